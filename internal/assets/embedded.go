package assets

import (
	"embed"
	"fmt"
)

//go:embed lists/*.txt
var lists embed.FS

// EmbeddedLoader loads lists compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadList loads lists/{name}.txt from the embedded filesystem.
func (e *EmbeddedLoader) LoadList(name string) (string, error) {
	if err := ValidateListName(name); err != nil {
		return "", err
	}

	content, err := lists.ReadFile("lists/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrListNotFound, name)
	}

	return string(content), nil
}

// Describe implements ListLoader.
func (e *EmbeddedLoader) Describe(string) string {
	return SourceEmbedded
}

var _ ListLoader = (*EmbeddedLoader)(nil)
