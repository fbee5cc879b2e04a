// Package ocr reads free text out of capture regions using Tesseract.
//
// The symbol pipeline handles every numeric stat; this package exists for
// text regions such as club and player names, where template matching a
// full character set is not worth the template maintenance.
//
// Tesseract is consulted through gosseract's native bindings, which need
// CGO and a system Tesseract install (apt-get install tesseract-ocr
// tesseract-ocr-eng). Builds without CGO, and platforms other than Linux,
// get a stub whose constructor reports ErrUnavailable; callers fall back
// to the symbol pipeline.
package ocr
