//go:build cgo && linux

package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Reader reads text from capture regions through Tesseract. It satisfies
// the extraction pipeline's TextReader interface.
type Reader struct {
	language string
}

// NewReader returns a Tesseract-backed reader. An empty language selects
// DefaultLanguage. The language model must be installed on the system.
func NewReader(language string) (*Reader, error) {
	if language == "" {
		language = DefaultLanguage
	}
	// Fail at construction, not per region, when Tesseract is missing.
	client := gosseract.NewClient()
	defer client.Close()
	if client.Version() == "" {
		return nil, fmt.Errorf("tesseract not installed: %w", ErrUnavailable)
	}
	return &Reader{language: language}, nil
}

// ReadRegion crops the region, hands it to Tesseract through a temporary
// PNG, and returns the recognised text with the mean word confidence in
// [0, 1]. The region is clamped to the capture bounds.
func (r *Reader) ReadRegion(img image.Image, region image.Rectangle) (string, float64, error) {
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return "", 0, fmt.Errorf("region outside capture bounds")
	}
	cropped := imaging.Crop(img, region)

	// Tesseract wants a file path.
	tmp, err := os.CreateTemp("", "screenstats-ocr-*.png")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, cropped); err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmp.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.language); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("text recognition failed: %w", err)
	}
	text = strings.TrimSpace(text)

	conf := 0.0
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		for _, box := range boxes {
			conf += float64(box.Confidence) / 100.0
		}
		conf /= float64(len(boxes))
	}
	return text, conf, nil
}

// EngineInfo reports the Tesseract build backing this binary.
func EngineInfo() Info {
	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	if version == "" {
		return Info{Backend: "gosseract", Error: "tesseract not installed"}
	}
	return Info{Available: true, Backend: "gosseract", Version: version}
}
