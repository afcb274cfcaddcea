// Package tex2txt strips LaTeX markup from a document so the remaining prose
// can be fed to a spell or grammar checker.
//
// # Quick Start
//
//	conv, err := tex2txt.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, tex2txt.Input{
//	    TexPath: "thesis/chapter1.tex",
//	    OutPath: "out/chapter1.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Kept, "lines written")
//
// # Pipeline
//
// A run is one linear pass:
//
//  1. Line reading: "%" comment lines and every line of a
//     \begin{...}...\end{...} block are dropped.
//  2. Macro stripping: \footcite, \footnotetext, \footnote, \cite, \input and
//     \label are removed, \ref{...} becomes a placeholder.
//  3. Literal stripping: every entry of the expression list is deleted.
//  4. Writing: one line per surviving input line, newline-terminated.
//
// Only line-initial \begin{ and \end{ switch block skipping on and off, and
// blocks do not nest: the first \end{ closes the block.
//
// # Expression Lists
//
// Expression lists hold one literal per line. The built-in list removes
// \ac{, \acs{, \enquote{, \chapter{, \section{, \subsection{, } and $.
// ResolveExpressions combines a custom list with the defaults according to
// a Policy, and DefaultExpressions looks for a defaults.txt side file before
// falling back to the built-in list.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := tex2txt.NewConverter(
//	    tex2txt.WithExpressions(exprs),
//	    tex2txt.WithPlaceholder("[ref]"),
//	    tex2txt.WithKeepInput(),
//	)
package tex2txt
