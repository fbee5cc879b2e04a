package glyph

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/gaffkit/screenstats/internal/imaging"
)

// LoadDirectory builds a registry from a directory of labelled template
// images, the layout the harvesting workflow produces: one PNG per sample,
// named for its symbol.
//
//	0.png 1.png ... 9.png   digit templates
//	7_2.png                 additional sample for a symbol
//	dot.png percent.png     punctuation templates
//	a.png b.png ...         letter templates where needed
//
// Each image is resampled onto the template raster and binarised. Extra
// samples per symbol improve matching on anti-aliased captures. Directory
// read order is lexical, so template order within a symbol is stable.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	var templates []Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		sym, ok := symbolForName(entry.Name())
		if !ok {
			return nil, fmt.Errorf("template file %q does not name a symbol", entry.Name())
		}

		path := filepath.Join(dir, entry.Name())
		img, err := loadTemplateImage(path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, Template{
			Symbol: sym,
			Bitmap: imaging.ResampleToBitmap(img, TemplateWidth, TemplateHeight, 128),
		})
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no template images in %s", dir)
	}
	return NewRegistry(templates...)
}

// symbolForName maps a template filename to its symbol. A trailing _N
// sample suffix is ignored.
func symbolForName(filename string) (Symbol, bool) {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	if i := strings.IndexByte(name, '_'); i >= 0 {
		name = name[:i]
	}

	switch name {
	case "dot":
		return DecimalPoint, true
	case "percent":
		return Percent, true
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return 0, false
	}
	return Symbol(runes[0]), true
}

func loadTemplateImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template %s: %w", path, err)
	}
	return img, nil
}
