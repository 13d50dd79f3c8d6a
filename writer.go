package converto

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lineEnding is the platform line break used between pages and for any
// newline inside page text: CRLF on Windows hosts, LF elsewhere.
func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// joinPages right-trims each page's text and joins pages with exactly
// one line break, so the page boundary is never doubled regardless of
// how the extractor terminated the page.
func joinPages(pages []PageResult) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strings.TrimRight(p.Text, " \t\r\n\f")
	}
	return strings.Join(parts, "\n")
}

// writeText writes UTF-8 text to path with host line endings, normalized
// to Unicode NFC (OCR output commonly carries decomposed code points).
// Without overwrite the file is created exclusively, so a racing writer
// cannot slip in between the upfront clobber check and the write.
func writeText(path, text string, overwrite bool) error {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if eol := lineEnding(); eol != "\n" {
		text = strings.ReplaceAll(text, "\n", eol)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}
