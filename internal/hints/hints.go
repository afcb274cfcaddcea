// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForInputNotFound returns a hint for a missing .tex input.
// Suggests the .tex extension when the path has none.
func ForInputNotFound(path string) string {
	if filepath.Ext(path) == "" {
		return format("did you mean " + path + ".tex?")
	}
	return format("check the path; it is resolved relative to the working directory")
}

// ForExpressionsNotFound returns a hint for a missing expression list.
func ForExpressionsNotFound() string {
	return format("expression files hold one literal per line; omit --expressions to use the defaults")
}

// ForDefaultsNotFound returns a hint for a missing explicit defaults list.
func ForDefaultsNotFound() string {
	return format("omit --defaults to use ./defaults.txt or the built-in list")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-tex2txt/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
