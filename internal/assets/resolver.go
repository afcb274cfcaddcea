package assets

import (
	"errors"
	"os"
	"path/filepath"
)

// AppDirName is the per-user config directory name.
const AppDirName = "go-tex2txt"

// ListResolver searches directory loaders in order and falls back to the
// embedded lists when none of them has the requested list.
type ListResolver struct {
	dirs     []ListLoader
	embedded ListLoader
}

// NewListResolver creates a ListResolver over searchDirs.
// Directories that do not exist are skipped: an absent user config directory
// is the common case, not an error.
func NewListResolver(searchDirs ...string) *ListResolver {
	r := &ListResolver{embedded: NewEmbeddedLoader()}
	for _, dir := range searchDirs {
		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			continue
		}
		r.dirs = append(r.dirs, loader)
	}
	return r
}

// DefaultSearchDirs returns the working directory followed by
// <UserConfigDir>/go-tex2txt, when resolvable.
func DefaultSearchDirs() []string {
	dirs := []string{"."}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(cfgDir, AppDirName))
	}
	return dirs
}

// Resolve loads the named list and reports where it came from: the file path
// for a side file, or SourceEmbedded for the built-in copy.
// Only "not found" falls through to the next loader; a read or validation
// error on an existing side file is returned as is.
func (r *ListResolver) Resolve(name string) (content, source string, err error) {
	for _, loader := range r.dirs {
		content, err := loader.LoadList(name)
		if err == nil {
			return content, loader.Describe(name), nil
		}
		if !errors.Is(err, ErrListNotFound) {
			return "", "", err
		}
	}

	content, err = r.embedded.LoadList(name)
	if err != nil {
		return "", "", err
	}
	return content, SourceEmbedded, nil
}
