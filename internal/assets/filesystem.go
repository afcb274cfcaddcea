package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads lists from a directory on the filesystem.
// Implements ListLoader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadList loads {basePath}/{name}.txt.
func (f *FilesystemLoader) LoadList(name string) (string, error) {
	if err := ValidateListName(name); err != nil {
		return "", err
	}

	// Symlinked side files are followed wherever they point; ValidateListName
	// keeps the name itself inside basePath.
	content, err := os.ReadFile(f.listPath(name)) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q in %s", ErrListNotFound, name, f.basePath)
		}
		return "", fmt.Errorf("%w: %v", ErrListRead, err)
	}

	return string(content), nil
}

// Describe implements ListLoader.
func (f *FilesystemLoader) Describe(name string) string {
	return f.listPath(name)
}

func (f *FilesystemLoader) listPath(name string) string {
	return filepath.Join(f.basePath, name+".txt")
}

var _ ListLoader = (*FilesystemLoader)(nil)
