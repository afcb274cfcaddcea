package tex2txt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/alnah/go-tex2txt/internal/assets"
)

// BuiltinSource is the source DefaultExpressions reports when no defaults
// side file was found.
const BuiltinSource = assets.SourceEmbedded

// closingBrace is appended to replace-policy lists that lack it.
const closingBrace = "}"

// Policy selects how a custom expression list combines with the defaults.
type Policy int

const (
	// PolicyReplace uses the custom list alone (plus "}").
	PolicyReplace Policy = iota
	// PolicySupplement uses the custom list followed by the defaults.
	PolicySupplement
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyReplace:
		return "replace"
	case PolicySupplement:
		return "supplement"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts "replace" or "supplement" (case-insensitive) to a
// Policy. An empty string yields PolicyReplace.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return PolicyReplace, nil
	case "supplement":
		return PolicySupplement, nil
	default:
		return PolicyReplace, fmt.Errorf("%w: %q (must be replace or supplement)", ErrInvalidPolicy, s)
	}
}

// ParseExpressions reads one literal per line. Line terminators are
// trimmed, nothing else is: leading or trailing spaces are part of the
// literal. Blank lines are skipped. The input is decoded like a document,
// so a byte-order mark never sticks to the first literal.
func ParseExpressions(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(decodeText(r))
	sc.Buffer(make([]byte, 0, 4096), MaxLineSize)

	var exprs []string
	for sc.Scan() {
		expr := strings.TrimSuffix(sc.Text(), "\r")
		if expr == "" {
			continue
		}
		exprs = append(exprs, expr)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadExpressions, err)
	}
	return exprs, nil
}

// LoadExpressionFile reads an expression list from path.
// Returns an error wrapping ErrNotFound if the file does not exist.
func LoadExpressionFile(path string) ([]string, error) {
	if err := requireFile(path, ErrReadExpressions); err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadExpressions, path, err)
	}
	defer f.Close()

	exprs, err := ParseExpressions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return exprs, nil
}

// BuiltinExpressions returns the list compiled into the binary:
// \ac{, \acs{, \enquote{, \chapter{, \section{, \subsection{, }, $.
func BuiltinExpressions() []string {
	content, err := assets.BuiltinList(assets.DefaultsName)
	if err != nil {
		// The list is embedded at build time; failing here is a packaging bug.
		panic("tex2txt: built-in expression list missing: " + err.Error())
	}
	exprs, err := ParseExpressions(strings.NewReader(content))
	if err != nil {
		panic("tex2txt: built-in expression list unreadable: " + err.Error())
	}
	return exprs
}

// DefaultExpressions loads the defaults list and reports its source.
//
// When explicitPath is set it must exist. Otherwise defaults.txt is searched
// for in searchDirs, in order; if none has it, the built-in list is returned
// with source BuiltinSource so the caller can warn about it.
func DefaultExpressions(explicitPath string, searchDirs ...string) (exprs []string, source string, err error) {
	if explicitPath != "" {
		exprs, err := LoadExpressionFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return exprs, explicitPath, nil
	}

	content, source, err := assets.NewListResolver(searchDirs...).Resolve(assets.DefaultsName)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrReadExpressions, err)
	}

	exprs, err = ParseExpressions(strings.NewReader(content))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", source, err)
	}
	return exprs, source, nil
}

// ResolveExpressions builds the active list.
//
//   - customPath empty: defaults only (policy is ignored).
//   - PolicySupplement: custom entries, then defaults.
//   - PolicyReplace: custom entries, then "}" unless already listed.
//
// The returned slice never aliases defaults.
func ResolveExpressions(customPath string, policy Policy, defaults []string) ([]string, error) {
	if customPath == "" {
		return slices.Clone(defaults), nil
	}

	custom, err := LoadExpressionFile(customPath)
	if err != nil {
		return nil, err
	}

	return combineExpressions(custom, policy, defaults)
}

func combineExpressions(custom []string, policy Policy, defaults []string) ([]string, error) {
	switch policy {
	case PolicySupplement:
		return slices.Concat(custom, defaults), nil
	case PolicyReplace:
		if slices.Contains(custom, closingBrace) {
			return slices.Clone(custom), nil
		}
		return slices.Concat(custom, []string{closingBrace}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPolicy, policy)
	}
}
