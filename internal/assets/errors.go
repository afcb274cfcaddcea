package assets

import "errors"

// Sentinel errors for list loading.
var (
	// ErrListNotFound indicates the requested list does not exist.
	ErrListNotFound = errors.New("expression list not found")

	// ErrInvalidListName indicates the list name contains path separators,
	// dots, or is empty.
	ErrInvalidListName = errors.New("invalid list name")

	// ErrInvalidBasePath indicates a search directory is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrListRead indicates an I/O error occurred while reading a list file.
	ErrListRead = errors.New("failed to read expression list")
)
