//go:build !ocr

package ocr

import (
	"context"
	"errors"
	"testing"
)

func TestBindingStubReturnsNotEnabled(t *testing.T) {
	_, err := NewBindingEngine()
	if !errors.Is(err, ErrBindingNotEnabled) {
		t.Errorf("NewBindingEngine() error = %v, want ErrBindingNotEnabled", err)
	}
}

func TestBindingStubRecognize(t *testing.T) {
	var e BindingEngine
	_, err := e.Recognize(context.Background(), NewInput([]byte("img")))
	if !errors.Is(err, ErrBindingNotEnabled) {
		t.Errorf("Recognize() error = %v, want ErrBindingNotEnabled", err)
	}
}
