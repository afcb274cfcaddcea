package assets

// DefaultsName is the list consulted when no explicit expression file is
// given, and the file name (plus ".txt") searched for on disk.
const DefaultsName = "defaults"

// SourceEmbedded is reported by ListResolver when a list came from the binary.
const SourceEmbedded = "embedded"

var builtin = NewEmbeddedLoader()

// BuiltinList returns the embedded copy of the named list.
func BuiltinList(name string) (string, error) {
	return builtin.LoadList(name)
}
