package assets

import (
	"fmt"
	"strings"
)

// ValidateListName checks that a list name is safe for use as a filename.
// Dots are rejected so callers cannot pick another extension or escape with "..".
func ValidateListName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidListName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidListName, name)
	}
	return nil
}
