//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// BindingEngine performs OCR in-process through the gosseract client.
// It avoids the per-page subprocess overhead of CommandEngine but cannot
// point at a custom tesseract executable.
type BindingEngine struct{}

// NewBindingEngine constructs an in-process Tesseract engine.
func NewBindingEngine() (*BindingEngine, error) {
	return &BindingEngine{}, nil
}

// Name identifies the engine in logs and errors.
func (e *BindingEngine) Name() string { return "tesseract" }

// Recognize performs OCR on the input image.
func (e *BindingEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return Result{}, fmt.Errorf("%w: set languages: %v", ErrUnavailable, err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(in.DPI)); err != nil {
			return Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Result{PlainText: strings.TrimSpace(text)}, nil
}
