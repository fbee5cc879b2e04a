package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaffkit/screenstats/internal/career"
	"github.com/gaffkit/screenstats/internal/extract"
)

var (
	extractImage      string
	extractCoords     string
	extractScreen     string
	extractTemplates  string
	extractThreshold  float64
	extractStoreDir   string
	extractSaveCareer string
	extractHomeTeam   string
	extractAwayTeam   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract every stat a screen declares from a screenshot",
	Long: `Extract crops each region the coordinate map declares for the screen,
reads it through the recognition pipeline and prints the batch. Regions
that cannot be read are reported with a reason; they never abort the
batch. With --save-career the recognised values are recorded as a match.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractImage, "image", "i", "", "Path to the screenshot")
	extractCmd.Flags().StringVarP(&extractCoords, "coords", "c", "coordinates.yaml", "Path to the coordinate map")
	extractCmd.Flags().StringVarP(&extractScreen, "screen", "s", "", "Screen name within the coordinate map")
	extractCmd.Flags().StringVarP(&extractTemplates, "templates", "t", "", "Directory of harvested glyph templates (default: builtin font)")
	extractCmd.Flags().Float64Var(&extractThreshold, "threshold", 0, "Classifier acceptance threshold (0 = default)")
	extractCmd.Flags().StringVar(&extractStoreDir, "store", "careers", "Career store directory")
	extractCmd.Flags().StringVar(&extractSaveCareer, "save-career", "", "Career ID to record the extracted match under")
	extractCmd.Flags().StringVar(&extractHomeTeam, "home", "", "Home team name for the match record")
	extractCmd.Flags().StringVar(&extractAwayTeam, "away", "", "Away team name for the match record")

	_ = extractCmd.MarkFlagRequired("image")
	_ = extractCmd.MarkFlagRequired("screen")
}

func runExtract(cmd *cobra.Command, args []string) error {
	img, m, err := loadInputs(extractImage, extractCoords)
	if err != nil {
		return err
	}
	registry, err := loadRegistry(extractTemplates)
	if err != nil {
		return err
	}

	batch, err := newExtractor(registry, extractThreshold).Extract(img, m, extractScreen)
	if err != nil {
		return err
	}

	printBatch(batch)

	if extractSaveCareer != "" {
		if err := saveMatch(batch); err != nil {
			return err
		}
		fmt.Printf("\nRecorded match for career %q (%d/%d stats)\n",
			extractSaveCareer, batch.Recognized(), len(batch.Stats))
	}
	return nil
}

func printBatch(batch *extract.BatchResult) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "STAT\tVALUE\tCONFIDENCE\tNOTE\n")
	for _, s := range batch.Stats {
		switch {
		case !s.Value.Recognized:
			fmt.Fprintf(w, "%s\tunrecognised\t-\t%s\n", s.Key, s.Value.Reason)
		case s.Value.Text != "":
			fmt.Fprintf(w, "%s\t%s\t%.2f\t\n", s.Key, s.Value.Text, s.Value.Confidence)
		default:
			fmt.Fprintf(w, "%s\t%s\t%.2f\t\n", s.Key, s.Value.Raw, s.Value.Confidence)
		}
	}
	w.Flush()
}

// saveMatch records the recognised numeric values under the career,
// splitting home from away by stat key suffix.
func saveMatch(batch *extract.BatchResult) error {
	store, err := career.NewStore(extractStoreDir)
	if err != nil {
		return err
	}
	c, err := store.Open(extractSaveCareer)
	if err != nil {
		return err
	}

	rec := career.MatchRecord{
		HomeTeam: extractHomeTeam,
		AwayTeam: extractAwayTeam,
		Home:     make(map[string]float64),
		Away:     make(map[string]float64),
	}
	for _, s := range batch.Stats {
		if !s.Value.Recognized || s.Value.Text != "" {
			continue
		}
		switch {
		case strings.HasSuffix(s.Key, "_home"):
			rec.Home[strings.TrimSuffix(s.Key, "_home")] = s.Value.Number
		case strings.HasSuffix(s.Key, "_away"):
			rec.Away[strings.TrimSuffix(s.Key, "_away")] = s.Value.Number
		default:
			rec.Home[s.Key] = s.Value.Number
		}
	}
	return c.AddMatch(rec)
}
