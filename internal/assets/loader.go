package assets

// ListLoader loads an expression list by name.
type ListLoader interface {
	// LoadList returns the raw content of {name}.txt.
	// Returns ErrListNotFound if the list doesn't exist.
	// Returns ErrInvalidListName if the name contains invalid characters.
	LoadList(name string) (string, error)

	// Describe names where the loader reads from, for log records.
	Describe(name string) string
}
