package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every run.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logJSON bool
}

// expressionFlags selects the literal expression list.
type expressionFlags struct {
	file       string // Custom list path
	additional bool   // Supplement defaults instead of replacing them
	defaults   string // Defaults side file path
}

// macroFlags tunes the macro pass.
type macroFlags struct {
	placeholder string
	keepInput   bool
}

// convertFlags holds all flags for a conversion.
type convertFlags struct {
	common      commonFlags
	expressions expressionFlags
	macros      macroFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.logJSON, "log-json", false, "emit log records as JSON")
}

// addExpressionFlags adds expression list flags to a FlagSet.
func addExpressionFlags(fs *flag.FlagSet, f *expressionFlags) {
	fs.StringVarP(&f.file, "expressions", "e", "", "custom expression list file")
	fs.BoolVarP(&f.additional, "additional", "a", false, "supplement the defaults instead of replacing them")
	fs.StringVar(&f.defaults, "defaults", "", "defaults expression list file")
}

// addMacroFlags adds macro pass flags to a FlagSet.
func addMacroFlags(fs *flag.FlagSet, f *macroFlags) {
	fs.StringVar(&f.placeholder, "placeholder", "", "text replacing \\ref{...}")
	fs.BoolVar(&f.keepInput, "keep-input", false, "do not strip \\input{...}")
}

// parseConvertFlags parses conversion flags and returns positional args.
// Parse errors wrap ErrUsage; -h/--help returns flag.ErrHelp untouched.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("tex2txt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &convertFlags{}
	addCommonFlags(fs, &f.common)
	addExpressionFlags(fs, &f.expressions)
	addMacroFlags(fs, &f.macros)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return f, fs.Args(), nil
}
