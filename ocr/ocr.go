// Package ocr defines the OCR engine abstraction used for pages that
// carry no embedded text layer, plus Tesseract-backed implementations.
//
// Two engines are provided. CommandEngine invokes the tesseract
// executable as a subprocess and is always available; it is the only
// engine that can honor a custom executable path. BindingEngine runs
// Tesseract in-process via gosseract and requires building with the
// "ocr" build tag:
//
//	go build -tags ocr
//
// Both require Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the OCR engine cannot run at all: the
// executable is missing, or the requested language pack is not
// installed. A conversion that needs OCR fails outright on this error
// rather than skipping pages.
var ErrUnavailable = errors.New("OCR engine unavailable")

// Input is a single encoded page image submitted for recognition.
type Input struct {
	// Image is the encoded image payload (PNG).
	Image []byte
	// Languages lists Tesseract language codes (e.g. "eng", "deu").
	// Multiple entries are combined, matching tesseract's eng+deu form.
	Languages []string
	// DPI is the effective resolution of the image; zero means unknown.
	DPI int
}

// Result is the recognition output for one input image.
type Result struct {
	// PlainText is the recognized text with surrounding whitespace
	// trimmed. It may be empty for blank pages.
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// InputOption mutates an Input during construction.
type InputOption func(*Input)

// WithLanguages sets language hints on the input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithDPI sets the effective resolution of the input image.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// NewInput builds an Input for the given encoded image.
func NewInput(image []byte, opts ...InputOption) Input {
	in := Input{Image: image}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
