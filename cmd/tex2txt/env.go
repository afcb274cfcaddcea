package main

import (
	"io"
	"os"

	"github.com/alnah/go-tex2txt/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, process environment, and the defaults search path.
type Environment struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	Environ    func() []string
	SearchDirs []string // Directories searched for defaults.txt
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		Environ:    os.Environ,
		SearchDirs: assets.DefaultSearchDirs(),
	}
}
