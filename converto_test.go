package converto

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeInputPDF drops a placeholder .pdf file so input validation passes
// for tests that inject a fake page source.
func writeInputPDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%fake fixture\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPDF(t, dir, "notes.pdf")
	source := &fakeSource{pages: []string{"Hello\n", "World\n"}}

	outPath, pages, err := Open(input).WithSource(source).Convert(context.Background())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := filepath.Join(dir, "notes.txt")
	if outPath != want {
		t.Errorf("output path = %q, want %q", outPath, want)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d page results, want 2", len(pages))
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	wantText := "Hello\nWorld"
	if runtime.GOOS == "windows" {
		wantText = "Hello\r\nWorld"
	}
	if string(data) != wantText {
		t.Errorf("output content = %q, want %q", data, wantText)
	}
}

func TestConvertRefusesToClobber(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPDF(t, dir, "notes.pdf")
	existing := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(existing, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}
	source := &fakeSource{pages: []string{"Hello"}}

	_, _, err := Open(input).WithSource(source).Convert(context.Background())
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("Convert() error = %v, want ErrOutputExists", err)
	}

	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep me" {
		t.Errorf("existing output was modified: %q", data)
	}
}

func TestConvertOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPDF(t, dir, "notes.pdf")
	existing := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	source := &fakeSource{pages: []string{"new text"}}

	_, _, err := Open(input).WithSource(source).Overwrite().Convert(context.Background())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new text" {
		t.Errorf("output content = %q, want %q", data, "new text")
	}
}

func TestConvertDirectoryTarget(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	input := writeInputPDF(t, inDir, "report.pdf")
	source := &fakeSource{pages: []string{"body"}}

	outPath, _, err := Open(input).WithSource(source).Output(outDir).Convert(context.Background())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if want := filepath.Join(outDir, "report.txt"); outPath != want {
		t.Errorf("output path = %q, want %q", outPath, want)
	}
}

func TestConvertInputValidation(t *testing.T) {
	dir := t.TempDir()
	notPDF := filepath.Join(dir, "notes.docx")
	if err := os.WriteFile(notPDF, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing", filepath.Join(dir, "gone.pdf"), ErrInputNotFound},
		{"directory", dir, ErrInputNotAFile},
		{"wrong extension", notPDF, ErrInputNotPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Open(tt.input).Convert(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("Convert() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConvertChainIsImmutable(t *testing.T) {
	base := Open("doc.pdf")
	withOCR := base.OCRMode(OCRAlways)

	if base.options.ocrMode != OCRNever {
		t.Error("configuring a derived converter mutated the original")
	}
	if withOCR.options.ocrMode != OCRAlways {
		t.Error("derived converter lost its configuration")
	}
}

func TestText(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPDF(t, dir, "notes.pdf")
	source := &fakeSource{pages: []string{"Hello", "World"}}

	text, err := Open(input).WithSource(source).Text(context.Background())
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "Hello\nWorld" {
		t.Errorf("Text() = %q, want %q", text, "Hello\nWorld")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); !os.IsNotExist(err) {
		t.Error("Text() must not write an output file")
	}
}

func TestParseMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Mode
	}{
		{"never", OCRNever},
		{"auto", OCRAuto},
		{"always", OCRAlways},
	} {
		got, err := ParseMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
		if got.String() != tt.in {
			t.Errorf("Mode(%v).String() = %q, want %q", got, got.String(), tt.in)
		}
	}

	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("expected error for invalid mode")
	}
}
