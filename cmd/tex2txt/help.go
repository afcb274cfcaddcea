package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tex2txt [flags] <tex_path> <out_path>")
	fmt.Fprintln(w, "       tex2txt <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Strip LaTeX markup so the prose can be spell or grammar checked.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Expressions:")
	fmt.Fprintln(w, "  -e, --expressions <path>  Custom expression list (one literal per line)")
	fmt.Fprintln(w, "  -a, --additional          Supplement the defaults instead of replacing them")
	fmt.Fprintln(w, "      --defaults <path>     Defaults list (default: ./defaults.txt, then built-in)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Macros:")
	fmt.Fprintln(w, "      --placeholder <s>     Text replacing \\ref{...} (default: \"<Referenz entfernt>\")")
	fmt.Fprintln(w, "      --keep-input          Do not strip \\input{...}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --log-json            Emit log records as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TEX2TXT_CONFIG, TEX2TXT_EXPRESSIONS, TEX2TXT_DEFAULTS,")
	fmt.Fprintln(w, "  TEX2TXT_PLACEHOLDER, TEX2TXT_POLICY, TEX2TXT_KEEP_INPUT,")
	fmt.Fprintln(w, "  TEX2TXT_LOG_FORMAT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 error, 2 usage, 3 file I/O")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: tex2txt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: tex2txt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
