package tex2txt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-tex2txt/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// WriteFile writes lines to path, one per line, each followed by "\n".
// Missing parent directories are created and an existing file is replaced.
// Errors wrap ErrWriteOutput and keep the underlying os error for errors.Is.
func WriteFile(path string, lines []string) error {
	return writeFileWith(path, func(w io.Writer) error {
		return WriteLines(w, lines)
	})
}

// writeFileWith writes through a temp file in path's directory and renames
// it over path once write and close succeed. On any failure the temp file is
// removed and path is left untouched.
func writeFileWith(path string, write func(io.Writer) error) (err error) {
	if err := fileutil.EnsureParentDir(path, dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrWriteOutput, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// WriteLines writes lines to w, each followed by "\n".
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
