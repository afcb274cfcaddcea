// Package assets locates expression-list files for the stripper.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	ListLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in lists)
//	    ├── FilesystemLoader  - loads {name}.txt from a directory on disk
//	    └── ListResolver      - searches directories in order, then embedded
//
// EmbeddedLoader carries the built-in "defaults" list compiled into the
// binary. It is the last resort when no side file is found on disk.
//
// FilesystemLoader reads side files from one directory. A side file may be a
// symlink to anywhere: it is placed by the user, not looked up by a
// user-supplied name.
//
// ListResolver is what the CLI uses: the working directory and the user
// config directory are searched before the embedded copy, so a defaults.txt
// placed beside the document overrides the built-in list.
//
// # List Format
//
// One literal per line, UTF-8, no escaping. Parsing is left to the caller.
//
// # Security
//
// List names are validated (no separators or dots), so a name can never
// address a file outside the searched directory.
package assets
