package cmd

import (
	"fmt"
	"image"
	"log"

	"github.com/gaffkit/screenstats/internal/config"
	"github.com/gaffkit/screenstats/internal/extract"
	"github.com/gaffkit/screenstats/internal/glyph"
	"github.com/gaffkit/screenstats/internal/imaging"
	"github.com/gaffkit/screenstats/internal/ocr"
)

// loadRegistry picks the template library: a harvested directory when
// given, the builtin pixel font otherwise.
func loadRegistry(templatesDir string) (*glyph.Registry, error) {
	if templatesDir == "" {
		return glyph.Builtin(), nil
	}
	reg, err := glyph.LoadDirectory(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return reg, nil
}

// captures caches decoded screenshots across commands in one invocation.
var captures = imaging.NewCaptureCache()

// loadInputs loads the capture and the coordinate map together.
func loadInputs(imagePath, coordsPath string) (image.Image, *config.Map, error) {
	img, err := captures.Load(imagePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load capture: %w", err)
	}
	m, err := config.Load(coordsPath)
	if err != nil {
		return nil, nil, err
	}
	return img, m, nil
}

// newExtractor wires the extractor, attaching Tesseract for text regions
// when this build carries it.
func newExtractor(registry *glyph.Registry, threshold float64) *extract.Extractor {
	opts := extract.Options{Threshold: threshold}
	if reader, err := ocr.NewReader(""); err == nil {
		opts.TextReader = reader
	} else {
		log.Printf("Text regions use template matching: %v", err)
	}
	return extract.NewExtractor(registry, opts)
}
