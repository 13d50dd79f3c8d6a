package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// CommandEngine performs OCR by running the tesseract executable as a
// subprocess. The image is handed over through a temporary file and the
// recognized text is read from stdout.
type CommandEngine struct {
	path string
}

// NewCommandEngine creates a subprocess-backed engine. An empty path
// means "tesseract" is looked up on PATH; a non-empty path names the
// executable directly (e.g. C:\Program Files\Tesseract-OCR\tesseract.exe).
func NewCommandEngine(path string) *CommandEngine {
	if path == "" {
		path = "tesseract"
	}
	return &CommandEngine{path: path}
}

// Name identifies the engine in logs and errors.
func (e *CommandEngine) Name() string { return "tesseract-cli" }

// Recognize runs tesseract on the input image and returns the text it
// produced. A missing executable or language pack yields ErrUnavailable.
func (e *CommandEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	bin, err := exec.LookPath(e.path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s not found", ErrUnavailable, e.path)
	}

	tmp, err := os.CreateTemp("", "converto-page-*.png")
	if err != nil {
		return Result{}, fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(in.Image); err != nil {
		tmp.Close()
		return Result{}, fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("write temp image: %w", err)
	}

	args := buildArgs(tmp.Name(), in)
	slog.Debug("running tesseract", "bin", bin, "args", args)

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if languagePackMissing(msg) {
			return Result{}, fmt.Errorf("%w: %s", ErrUnavailable, msg)
		}
		if msg == "" {
			return Result{}, fmt.Errorf("tesseract: %w", err)
		}
		return Result{}, fmt.Errorf("tesseract: %w: %s", err, msg)
	}

	return Result{PlainText: strings.TrimSpace(stdout.String())}, nil
}

// buildArgs assembles the tesseract invocation: image to stdout, with
// language and DPI hints when present.
func buildArgs(imagePath string, in Input) []string {
	args := []string{imagePath, "stdout"}
	if len(in.Languages) > 0 {
		args = append(args, "-l", strings.Join(in.Languages, "+"))
	}
	if in.DPI > 0 {
		args = append(args, "--dpi", strconv.Itoa(in.DPI))
	}
	return args
}

// languagePackMissing reports whether tesseract's stderr indicates a
// missing traineddata file rather than a problem with the image.
func languagePackMissing(stderr string) bool {
	return strings.Contains(stderr, "Failed loading language") ||
		strings.Contains(stderr, "Error opening data file") ||
		strings.Contains(stderr, "tessdata")
}
