package ocr

import "errors"

// DefaultLanguage is the Tesseract language model used when none is given.
const DefaultLanguage = "eng"

// ErrUnavailable reports that no OCR engine can run in this build.
var ErrUnavailable = errors.New("ocr engine unavailable in this build")

// Info describes the OCR engine this binary carries.
type Info struct {
	Available bool   `json:"available"`
	Backend   string `json:"backend"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}
