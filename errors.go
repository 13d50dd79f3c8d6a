package converto

import (
	"errors"

	"github.com/tsawler/converto/ocr"
	"github.com/tsawler/converto/output"
)

// Failure kinds surfaced by Convert and Text. All are fatal: the run
// stops and no partial output is written. Match them with errors.Is.
var (
	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("input PDF not found")

	// ErrInputNotAFile indicates the input path exists but is not a
	// regular file.
	ErrInputNotAFile = errors.New("input path is not a file")

	// ErrInputNotPDF indicates the input file does not have a .pdf
	// extension.
	ErrInputNotPDF = errors.New("input file is not a PDF")

	// ErrExtractionFailed indicates the PDF could not be opened or read:
	// malformed structure, or encrypted with a wrong or missing password.
	ErrExtractionFailed = errors.New("failed to extract text from PDF")

	// ErrOutputDirMissing and ErrOutputExists re-export the resolver's
	// sentinels so every failure kind can be checked against this
	// package. ErrOCRUnavailable does the same for the OCR engine.
	ErrOutputDirMissing = output.ErrDirMissing
	ErrOutputExists     = output.ErrExists
	ErrOCRUnavailable   = ocr.ErrUnavailable
)
