package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaffkit/screenstats/internal/glyph"
	"github.com/gaffkit/screenstats/internal/imaging"
	"github.com/gaffkit/screenstats/internal/segment"
)

var (
	inspectImage     string
	inspectCoords    string
	inspectScreen    string
	inspectStat      string
	inspectTemplates string
	inspectOut       string
	inspectScale     float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Examine one stat region for coordinate tuning",
	Long: `Inspect crops a single declared region, reports its dominant colours
and per-glyph segmentation and classification, and writes an annotated
crop with a box around every accepted glyph. Use it to adjust rectangles
and colour profiles until the region reads cleanly.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectImage, "image", "i", "", "Path to the screenshot")
	inspectCmd.Flags().StringVarP(&inspectCoords, "coords", "c", "coordinates.yaml", "Path to the coordinate map")
	inspectCmd.Flags().StringVarP(&inspectScreen, "screen", "s", "", "Screen name within the coordinate map")
	inspectCmd.Flags().StringVar(&inspectStat, "stat", "", "Stat key to inspect")
	inspectCmd.Flags().StringVarP(&inspectTemplates, "templates", "t", "", "Directory of harvested glyph templates (default: builtin font)")
	inspectCmd.Flags().StringVarP(&inspectOut, "out", "o", "annotated.png", "Where to write the annotated crop")
	inspectCmd.Flags().Float64Var(&inspectScale, "scale", 4, "Magnification of the annotated crop")

	_ = inspectCmd.MarkFlagRequired("image")
	_ = inspectCmd.MarkFlagRequired("screen")
	_ = inspectCmd.MarkFlagRequired("stat")
}

func runInspect(cmd *cobra.Command, args []string) error {
	img, m, err := loadInputs(inspectImage, inspectCoords)
	if err != nil {
		return err
	}
	layout, ok := m.Screen(inspectScreen)
	if !ok {
		return fmt.Errorf("screen %q not in coordinate map", inspectScreen)
	}

	for _, s := range layout.Stats {
		if s.Key != inspectStat {
			continue
		}

		region, ok := imaging.CropROI(img, s.Rect.Bounds())
		if !ok {
			return fmt.Errorf("stat %q: rect lies outside the capture", s.Key)
		}

		fmt.Printf("stat %q: rect %v, kind %s\n", s.Key, s.Rect.Bounds(), s.Kind)
		fmt.Println("dominant colours:")
		for _, cf := range imaging.DominantColors(region, 5) {
			fmt.Printf("  %s  %.1f%%\n", cf.Hex, cf.Percentage)
		}

		registry, err := loadRegistry(inspectTemplates)
		if err != nil {
			return err
		}
		classifier := glyph.NewClassifier(registry, 0)

		bm := imaging.Binarize(region, s.Profile())
		glyphs := segment.Segment(bm, segment.DefaultOptions())
		fmt.Printf("segmented %d glyphs:\n", len(glyphs))
		for _, g := range glyphs {
			if g.Punct {
				fmt.Printf("  [%d] %v punct\n", g.Index, g.Bounds)
				continue
			}
			res := classifier.Classify(g.Bitmap)
			state := ""
			if res.Unclassified {
				state = " (rejected)"
			}
			fmt.Printf("  [%d] %v -> %s %.2f%s\n", g.Index, g.Bounds, res.Symbol, res.Confidence, state)
		}

		annotated := imaging.AnnotateGlyphs(region, segment.Boxes(glyphs), "#FF3030")
		out := imaging.ScaleRegion(annotated, inspectScale)

		f, err := os.Create(inspectOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", inspectOut, err)
		}
		defer f.Close()
		if err := png.Encode(f, out); err != nil {
			return fmt.Errorf("failed to write %s: %w", inspectOut, err)
		}
		fmt.Printf("annotated crop written to %s\n", inspectOut)
		return nil
	}
	return fmt.Errorf("stat %q not declared on screen %q", inspectStat, inspectScreen)
}
