package converto

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/converto/ocr"
)

// PageSource is the narrow surface the pipeline needs from an open PDF.
// document.Document is the production implementation; tests inject fakes.
type PageSource interface {
	// PageCount returns the number of pages.
	PageCount() int
	// PageText returns the embedded text of the zero-based page index,
	// or an empty string for pages without a text layer.
	PageText(index int) (string, error)
	// RenderPage rasterizes the zero-based page index to an encoded
	// image at the given resolution.
	RenderPage(index int, dpi float64) ([]byte, error)
}

// PageResult records what the pipeline produced for one page.
type PageResult struct {
	// Index is the zero-based page index.
	Index int
	// Text is the extracted text; it may be empty.
	Text string
	// UsedOCR reports whether the text came from OCR rather than the
	// embedded text layer.
	UsedOCR bool
}

// extractPages walks the document sequentially and applies the OCR mode
// decision per page:
//
//   - OCRNever: embedded text only, even if empty
//   - OCRAuto: embedded text unless it is blank after trimming, then OCR
//   - OCRAlways: OCR only, embedded extraction skipped
//
// Any OCR engine failure aborts the run; pages are never silently
// skipped.
func extractPages(ctx context.Context, source PageSource, engine ocr.Engine, opts ConvertOptions) ([]PageResult, error) {
	total := source.PageCount()
	results := make([]PageResult, 0, total)

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := PageResult{Index: i}
		if opts.ocrMode != OCRAlways {
			text, err := source.PageText(i)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
			}
			res.Text = text
		}

		needOCR := opts.ocrMode == OCRAlways ||
			(opts.ocrMode == OCRAuto && strings.TrimSpace(res.Text) == "")
		if needOCR {
			text, err := recognizePage(ctx, source, engine, i, opts)
			if err != nil {
				return nil, err
			}
			res.Text = text
			res.UsedOCR = true
		}

		results = append(results, res)
	}
	return results, nil
}

// recognizePage rasterizes one page and runs it through the OCR engine.
func recognizePage(ctx context.Context, source PageSource, engine ocr.Engine, index int, opts ConvertOptions) (string, error) {
	img, err := source.RenderPage(index, float64(opts.ocrDPI))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	in := ocr.NewInput(img,
		ocr.WithLanguages(splitLanguages(opts.ocrLang)...),
		ocr.WithDPI(opts.ocrDPI),
	)
	result, err := engine.Recognize(ctx, in)
	if err != nil {
		return "", fmt.Errorf("ocr page %d: %w", index+1, err)
	}
	return result.PlainText, nil
}

// splitLanguages turns the tesseract-style "eng+hin" spelling into a
// language list, dropping empty segments.
func splitLanguages(lang string) []string {
	var langs []string
	for _, l := range strings.Split(lang, "+") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
