// Package document wraps the external PDF collaborators behind the
// narrow surface the conversion pipeline needs: open a file (optionally
// with a password), count pages, read embedded page text, and rasterize
// a page for OCR.
//
// Embedded text comes from github.com/ledongthuc/pdf; page rasterization
// goes through github.com/gen2brain/go-fitz (MuPDF) and is only
// initialized when OCR actually needs an image.
package document

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF file.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
	render *renderer // lazily opened, OCR only
}

// Open opens the PDF at path. A non-empty password is used to decrypt
// protected documents; opening fails if the password is wrong or the
// file is not a well-formed PDF.
func Open(path, password string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var r *pdf.Reader
	if password != "" {
		// The reader keeps calling the callback until it returns an
		// empty string, so hand the password over exactly once or a
		// wrong password retries forever.
		tried := false
		r, err = pdf.NewReaderEncrypted(f, info.Size(), func() string {
			if tried {
				return ""
			}
			tried = true
			return password
		})
	} else {
		r, err = pdf.NewReader(f, info.Size())
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Document{path: path, file: f, reader: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// PageText returns the embedded text of the page at the zero-based
// index. Pages without a text layer yield an empty string, not an error.
func (d *Document) PageText(index int) (string, error) {
	text, err := safeText(func() (string, error) {
		p := d.reader.Page(index + 1)
		if p.V.IsNull() {
			return "", nil
		}
		return p.GetPlainText(nil)
	})
	if err != nil {
		return "", fmt.Errorf("page %d: %w", index+1, err)
	}
	return text, nil
}

// safeText runs fn and converts a parser panic into an error. The
// reader resolves objects lazily, so a malformed structure it only
// meets after open panics instead of returning an error.
func safeText(fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed structure: %v", r)
		}
	}()
	return fn()
}

// RenderPage rasterizes the page at the zero-based index to a grayscale
// PNG at the given resolution, suitable as OCR input.
func (d *Document) RenderPage(index int, dpi float64) ([]byte, error) {
	if d.render == nil {
		r, err := openRenderer(d.path)
		if err != nil {
			return nil, err
		}
		d.render = r
	}
	return d.render.page(index, dpi)
}

// Close releases the underlying file and, if one was opened, the
// rasterizer. It is safe to call Close multiple times.
func (d *Document) Close() error {
	var err error
	if d.file != nil {
		err = d.file.Close()
		d.file = nil
	}
	if d.render != nil {
		if cerr := d.render.close(); err == nil {
			err = cerr
		}
		d.render = nil
	}
	return err
}
