package ocr

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestNewInputOptions(t *testing.T) {
	in := NewInput([]byte("img"), WithLanguages("eng", "deu"), WithDPI(200))

	if string(in.Image) != "img" {
		t.Errorf("unexpected image: %q", in.Image)
	}
	if !reflect.DeepEqual(in.Languages, []string{"eng", "deu"}) {
		t.Errorf("unexpected languages: %v", in.Languages)
	}
	if in.DPI != 200 {
		t.Errorf("unexpected DPI: %d", in.DPI)
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			"defaults",
			Input{},
			[]string{"page.png", "stdout"},
		},
		{
			"single language",
			Input{Languages: []string{"eng"}},
			[]string{"page.png", "stdout", "-l", "eng"},
		},
		{
			"combined languages and dpi",
			Input{Languages: []string{"eng", "hin"}, DPI: 200},
			[]string{"page.png", "stdout", "-l", "eng+hin", "--dpi", "200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildArgs("page.png", tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandEngineMissingBinary(t *testing.T) {
	engine := NewCommandEngine("/no/such/tesseract-binary")

	_, err := engine.Recognize(context.Background(), NewInput([]byte("img")))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Recognize() error = %v, want ErrUnavailable", err)
	}
}

func TestCommandEngineDefaultsPath(t *testing.T) {
	engine := NewCommandEngine("")
	if engine.path != "tesseract" {
		t.Errorf("default path = %q, want tesseract", engine.path)
	}
	if engine.Name() != "tesseract-cli" {
		t.Errorf("Name() = %q", engine.Name())
	}
}

func TestLanguagePackMissing(t *testing.T) {
	tests := []struct {
		stderr string
		want   bool
	}{
		{"Error opening data file /usr/share/tessdata/xyz.traineddata", true},
		{"Failed loading language 'xyz'", true},
		{"Error in pixReadStream: unknown format", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := languagePackMissing(tt.stderr); got != tt.want {
			t.Errorf("languagePackMissing(%q) = %v, want %v", tt.stderr, got, tt.want)
		}
	}
}
