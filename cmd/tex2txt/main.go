package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	setMaxProcs(wantsVerbose(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// setMaxProcs configures GOMAXPROCS, logging the decision only when verbose.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}

// wantsVerbose reports whether -v or --verbose appears before "--".
func wantsVerbose(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// isCommand reports whether name is a subcommand rather than a path.
func isCommand(name string) bool {
	return name == "version" || name == "help"
}

// runMain dispatches args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	if isCommand(args[1]) {
		switch args[1] {
		case "version":
			fmt.Fprintf(env.Stdout, "tex2txt %s\n", Version)
		case "help":
			runHelp(args[2:], env)
		}
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := runConvert(ctx, args[1:], env)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		printUsage(env.Stdout)
		return ExitSuccess
	}

	fmt.Fprintln(env.Stderr, "error:", err)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(env.Stderr, "Run 'tex2txt help' for usage.")
	}
	return exitCodeFor(err)
}
