//go:build !ocr

package ocr

import (
	"context"
	"errors"
)

// ErrBindingNotEnabled is returned when the in-process engine is
// requested but gosseract support was not compiled in. Rebuild with
// -tags ocr to enable it; CommandEngine works without the tag.
var ErrBindingNotEnabled = errors.New("in-process OCR not enabled; rebuild with -tags ocr")

// BindingEngine is the stub used when the "ocr" build tag is not set.
// All operations return ErrBindingNotEnabled.
type BindingEngine struct{}

// NewBindingEngine returns an error indicating in-process OCR support
// is not compiled in.
func NewBindingEngine() (*BindingEngine, error) {
	return nil, ErrBindingNotEnabled
}

// Name identifies the engine in logs and errors.
func (e *BindingEngine) Name() string { return "tesseract" }

// Recognize returns ErrBindingNotEnabled.
func (e *BindingEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	return Result{}, ErrBindingNotEnabled
}
