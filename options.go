package converto

import "fmt"

// Mode selects how OCR participates in extraction.
type Mode int

const (
	// OCRNever uses only embedded text, even when a page has none.
	OCRNever Mode = iota
	// OCRAuto falls back to OCR for pages whose embedded text is empty
	// after trimming whitespace.
	OCRAuto
	// OCRAlways skips embedded extraction and recognizes every page.
	OCRAlways
)

// String returns the CLI spelling of the mode.
func (m Mode) String() string {
	switch m {
	case OCRAuto:
		return "auto"
	case OCRAlways:
		return "always"
	default:
		return "never"
	}
}

// ParseMode maps the CLI spelling onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "never":
		return OCRNever, nil
	case "auto":
		return OCRAuto, nil
	case "always":
		return OCRAlways, nil
	default:
		return OCRNever, fmt.Errorf("invalid OCR mode %q (choose never, auto, or always)", s)
	}
}

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	outputTarget  string
	overwrite     bool
	password      string
	ocrMode       Mode
	ocrLang       string
	ocrDPI        int
	tesseractPath string
}

// defaultOptions returns the default conversion options: no OCR, English
// language data when OCR is later enabled, 200 DPI rasterization.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		ocrMode: OCRNever,
		ocrLang: "eng",
		ocrDPI:  200,
	}
}
