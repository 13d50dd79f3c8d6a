package document

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// renderDPI is the resolution pages are rasterized at before being
// resampled to the resolution OCR asked for.
const renderDPI = 300.0

// renderer rasterizes document pages through MuPDF.
type renderer struct {
	doc *fitz.Document
}

func openRenderer(path string) (*renderer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for rendering: %w", path, err)
	}
	return &renderer{doc: doc}, nil
}

// page renders the zero-based page index and returns grayscale PNG
// bytes at the requested resolution.
func (r *renderer) page(index int, dpi float64) ([]byte, error) {
	img, err := r.doc.ImageDPI(index, renderDPI)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index+1, err)
	}
	data, err := grayPNG(img, renderDPI, dpi)
	if err != nil {
		return nil, fmt.Errorf("encode page %d: %w", index+1, err)
	}
	return data, nil
}

func (r *renderer) close() error {
	if r.doc == nil {
		return nil
	}
	err := r.doc.Close()
	r.doc = nil
	return err
}
