package tex2txt

import (
	"regexp"
	"strings"
)

// DefaultPlaceholder replaces every \ref{...}.
const DefaultPlaceholder = "<Referenz entfernt>"

// Macro patterns. Bracket and brace contents are matched non-greedily and
// never across lines: \cite{a} text \cite{b} loses both citations but keeps
// " text ".
var (
	footcitePattern     = regexp.MustCompile(`\\footcite\[.*?\]\{.*?\}`)
	footnotetextPattern = regexp.MustCompile(`\\footnotetext\{.*?\}`)
	footnotePattern     = regexp.MustCompile(`\\footnote\{.*?\}`)
	citePattern         = regexp.MustCompile(`\\cite\{.*?\}`)
	citeOptPattern      = regexp.MustCompile(`\\cite\[.*?\]\{.*?\}`)
	inputPattern        = regexp.MustCompile(`\\input\{.*?\}`)
	refPattern          = regexp.MustCompile(`\\ref\{.*?\}`)
	labelPattern        = regexp.MustCompile(`\\label\{.*?\}`)
)

// macroRule is one regex substitution of the macro pass.
type macroRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Stripper removes macros and literal expressions from document lines.
// The zero value strips \input{} and uses DefaultPlaceholder.
type Stripper struct {
	// Placeholder replaces \ref{...}; empty means DefaultPlaceholder.
	Placeholder string

	// KeepInput leaves \input{...} untouched.
	KeepInput bool
}

// rules returns the macro pass in application order.
func (s *Stripper) rules() []macroRule {
	placeholder := s.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	rules := []macroRule{
		{pattern: footcitePattern},
		{pattern: footnotetextPattern},
		{pattern: footnotePattern},
		{pattern: citePattern},
		{pattern: citeOptPattern},
	}
	if !s.KeepInput {
		rules = append(rules, macroRule{pattern: inputPattern})
	}
	return append(rules,
		macroRule{pattern: refPattern, replacement: placeholder},
		macroRule{pattern: labelPattern},
	)
}

// Strip returns a copy of lines with the macro pass applied, then every
// literal of exprs deleted in list order. Macros always go first so a literal
// "}" cannot break a \cite{...} before its pattern sees it.
// Empty literals are ignored. lines is not modified.
func (s *Stripper) Strip(lines, exprs []string) []string {
	rules := s.rules()
	out := make([]string, len(lines))

	for i, line := range lines {
		out[i] = applyMacros(rules, line)
	}

	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		for i := range out {
			out[i] = strings.ReplaceAll(out[i], expr, "")
		}
	}

	return out
}

func applyMacros(rules []macroRule, line string) string {
	for _, r := range rules {
		line = r.pattern.ReplaceAllLiteralString(line, r.replacement)
	}
	return line
}
