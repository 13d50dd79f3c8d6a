// Package converto converts a PDF's text content into a single plain-text
// file. Embedded text is extracted per page; OCR can be disabled, used as
// a per-page fallback, or forced for every page.
//
// Basic usage:
//
//	path, _, err := converto.Open("document.pdf").Convert(ctx)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	path, pages, err := converto.Open("scan.pdf").
//	    Output("out/").
//	    OCRMode(converto.OCRAuto).
//	    OCRLanguage("eng+deu").
//	    Convert(ctx)
//
// Failure kinds are exposed as sentinel errors (ErrOutputExists,
// ErrOCRUnavailable, ...) and matched with errors.Is.
package converto

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/converto/document"
	"github.com/tsawler/converto/ocr"
	"github.com/tsawler/converto/output"
)

// Converter provides a fluent interface for configuring and running a
// conversion. Each configuration method returns a new Converter instance,
// so a chain never mutates a previously returned value.
type Converter struct {
	inputPath string
	options   ConvertOptions

	// Test/advanced overrides for the external collaborators.
	source PageSource
	engine ocr.Engine
}

// Open prepares a conversion of the PDF at inputPath. Validation happens
// when Convert or Text is called, not here.
func Open(inputPath string) *Converter {
	return &Converter{
		inputPath: inputPath,
		options:   defaultOptions(),
	}
}

// clone creates a copy of the Converter so chain methods stay immutable.
func (c *Converter) clone() *Converter {
	copied := *c
	return &copied
}

// Output sets the output target: either a file path (a .txt extension is
// added when missing) or an existing directory that receives
// <input stem>.txt. An empty target places the output next to the input.
func (c *Converter) Output(target string) *Converter {
	n := c.clone()
	n.options.outputTarget = target
	return n
}

// Overwrite allows replacing an existing output file. Without it a
// conversion whose output path already exists fails with ErrOutputExists.
func (c *Converter) Overwrite() *Converter {
	n := c.clone()
	n.options.overwrite = true
	return n
}

// Password supplies the password for an encrypted input document.
func (c *Converter) Password(password string) *Converter {
	n := c.clone()
	n.options.password = password
	return n
}

// OCRMode selects how OCR participates in extraction. The default is
// OCRNever.
func (c *Converter) OCRMode(mode Mode) *Converter {
	n := c.clone()
	n.options.ocrMode = mode
	return n
}

// OCRLanguage sets the Tesseract language(s), e.g. "eng" or "eng+hin".
func (c *Converter) OCRLanguage(lang string) *Converter {
	n := c.clone()
	n.options.ocrLang = lang
	return n
}

// OCRDPI sets the resolution pages are rasterized at for OCR.
func (c *Converter) OCRDPI(dpi int) *Converter {
	n := c.clone()
	n.options.ocrDPI = dpi
	return n
}

// TesseractPath points the OCR subprocess at a specific tesseract
// executable instead of looking one up on PATH.
func (c *Converter) TesseractPath(path string) *Converter {
	n := c.clone()
	n.options.tesseractPath = path
	return n
}

// WithSource substitutes the page source used for extraction. Intended
// for tests and callers that already hold an open document.
func (c *Converter) WithSource(source PageSource) *Converter {
	n := c.clone()
	n.source = source
	return n
}

// WithEngine substitutes the OCR engine. Intended for tests and for
// callers using the in-process binding (see ocr.NewBindingEngine).
func (c *Converter) WithEngine(engine ocr.Engine) *Converter {
	n := c.clone()
	n.engine = engine
	return n
}

// Convert runs the full pipeline: validate the input, resolve the output
// path, extract text page by page, and write the result. It returns the
// path written and the per-page results. On error nothing is written.
func (c *Converter) Convert(ctx context.Context) (string, []PageResult, error) {
	if err := validateInput(c.inputPath); err != nil {
		return "", nil, err
	}

	outPath, err := output.Resolve(c.inputPath, c.options.outputTarget)
	if err != nil {
		return "", nil, err
	}
	if err := output.CheckClobber(outPath, c.options.overwrite); err != nil {
		return "", nil, err
	}

	pages, err := c.extract(ctx)
	if err != nil {
		return "", nil, err
	}

	if err := writeText(outPath, joinPages(pages), c.options.overwrite); err != nil {
		return "", nil, err
	}
	return outPath, pages, nil
}

// Text runs extraction only and returns the joined text without touching
// the filesystem for output.
func (c *Converter) Text(ctx context.Context) (string, error) {
	if err := validateInput(c.inputPath); err != nil {
		return "", err
	}
	pages, err := c.extract(ctx)
	if err != nil {
		return "", err
	}
	return joinPages(pages), nil
}

// extract opens the collaborators (unless overridden) and runs the page
// loop.
func (c *Converter) extract(ctx context.Context) ([]PageResult, error) {
	source := c.source
	if source == nil {
		doc, err := document.Open(c.inputPath, c.options.password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		defer doc.Close()
		source = doc
	}

	engine := c.engine
	if engine == nil {
		engine = ocr.NewCommandEngine(c.options.tesseractPath)
	}

	return extractPages(ctx, source, engine, c.options)
}

// validateInput confirms the input exists, is a regular file, and has a
// .pdf extension.
func validateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("stat input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrInputNotAFile, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: %s", ErrInputNotPDF, path)
	}
	return nil
}
