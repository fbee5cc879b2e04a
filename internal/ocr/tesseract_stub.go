//go:build !cgo || !linux

package ocr

import "image"

// Reader is the stub for builds without the Tesseract bindings. It is
// never constructed; NewReader always fails here.
type Reader struct{}

// NewReader reports that no OCR engine is present in this build.
func NewReader(language string) (*Reader, error) {
	return nil, ErrUnavailable
}

// ReadRegion exists to satisfy the TextReader interface shape.
func (r *Reader) ReadRegion(img image.Image, region image.Rectangle) (string, float64, error) {
	return "", 0, ErrUnavailable
}

// EngineInfo reports the absence of an OCR engine.
func EngineInfo() Info {
	return Info{Backend: "none", Error: ErrUnavailable.Error()}
}
