// Package output implements the output path resolution policy for
// converted text files: where the .txt lands relative to the input,
// how directory targets and missing extensions are handled, and when
// an existing file may be replaced.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned by the resolver. Callers match them with errors.Is.
var (
	// ErrDirMissing indicates the parent directory of the resolved
	// output path does not exist. The resolver never creates directories.
	ErrDirMissing = errors.New("output directory does not exist")

	// ErrExists indicates the resolved output path already exists and
	// overwriting was not requested.
	ErrExists = errors.New("output file already exists")
)

// Resolve computes the final output file path for inputPath.
//
// With an empty target the output is placed next to the input with the
// extension replaced by .txt. A target naming an existing directory
// receives <input stem>.txt inside that directory. Any other target is
// treated as a file path; an extension other than .txt is replaced so
// the result always ends in .txt exactly once.
func Resolve(inputPath, target string) (string, error) {
	var resolved string
	switch {
	case strings.TrimSpace(target) == "":
		resolved = replaceExt(inputPath)
	default:
		// Clean drops a trailing separator so "out/" without an existing
		// directory resolves to out.txt rather than out/.txt.
		target = filepath.Clean(target)
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			resolved = filepath.Join(target, Stem(inputPath)+".txt")
		} else {
			resolved = replaceExt(target)
		}
	}

	parent := filepath.Dir(resolved)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDirMissing, parent)
	}
	return resolved, nil
}

// CheckClobber verifies the resolved path may be written. A missing path
// is always fine. An existing regular file is acceptable only with
// overwrite set; an existing directory is never an acceptable target.
func CheckClobber(path string, overwrite bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat output: %w", err)
	}
	if info.IsDir() || !overwrite {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return nil
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// replaceExt swaps the extension of path for .txt. Paths already ending
// in .txt (any case) are returned unchanged.
func replaceExt(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".txt") {
		return path
	}
	return strings.TrimSuffix(path, ext) + ".txt"
}
