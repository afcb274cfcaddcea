package tex2txt

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/alnah/go-tex2txt/internal/logger"
)

// Input describes one file conversion.
type Input struct {
	TexPath string // LaTeX source, must exist
	OutPath string // text output, parent directories are created
}

// Result holds the outcome of a conversion.
type Result struct {
	Lines []string  // lines as written
	Stats ReadStats // what the reader dropped and kept
}

// Option configures a Converter.
type Option func(*Converter)

// WithExpressions sets the literal expression list. A nil slice keeps the
// built-in list; an empty one disables literal stripping. The slice is copied.
func WithExpressions(exprs []string) Option {
	return func(c *Converter) {
		c.exprs = slices.Clone(exprs)
	}
}

// WithPlaceholder sets the text that replaces \ref{...}.
// Panics if text is empty.
func WithPlaceholder(text string) Option {
	if text == "" {
		panic("tex2txt: WithPlaceholder text must not be empty")
	}
	return func(c *Converter) {
		c.stripper.Placeholder = text
	}
}

// WithKeepInput leaves \input{...} macros in the output.
func WithKeepInput() Option {
	return func(c *Converter) {
		c.stripper.KeepInput = true
	}
}

// WithLogger sets the logger for debug records. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// Converter runs the read, strip, write pipeline.
// A Converter holds no per-run state and may be reused.
type Converter struct {
	stripper Stripper
	exprs    []string
	logger   *slog.Logger
}

// NewConverter creates a Converter with the built-in expressions and
// placeholder, customised by opts.
// Returns ErrInvalidExpression if a literal spans lines: documents are
// stripped line by line, so it could never match.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.exprs == nil {
		c.exprs = BuiltinExpressions()
	}
	for i, expr := range c.exprs {
		if strings.ContainsAny(expr, "\r\n") {
			return nil, fmt.Errorf("%w: entry %d (%q) contains a line break", ErrInvalidExpression, i, expr)
		}
	}
	return c, nil
}

// Expressions returns a copy of the active expression list.
func (c *Converter) Expressions() []string {
	return slices.Clone(c.exprs)
}

// Convert reads in.TexPath, strips it and writes in.OutPath.
// A missing input fails with ErrNotFound before anything is written.
// ctx is checked between stages; a cancelled run never writes output.
func (c *Converter) Convert(ctx context.Context, in Input) (*Result, error) {
	lines, stats, err := ReadFile(in.TexPath)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("read input",
		"path", in.TexPath,
		"lines", stats.Read,
		"comments", stats.Comments,
		"block_lines", stats.Blocks,
		"kept", stats.Kept)
	if stats.Replaced > 0 {
		c.logger.Warn("input has invalid UTF-8; bytes replaced with U+FFFD",
			"path", in.TexPath,
			"lines", stats.Replaced)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("converting %s: %w", in.TexPath, err)
	}

	out := c.stripper.Strip(lines, c.exprs)
	c.logger.Debug("stripped markup", "expressions", len(c.exprs))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("converting %s: %w", in.TexPath, err)
	}

	if err := WriteFile(in.OutPath, out); err != nil {
		return nil, err
	}
	c.logger.Debug("wrote output", "path", in.OutPath, "lines", len(out))

	return &Result{Lines: out, Stats: stats}, nil
}

// StripString runs the pipeline on an in-memory document and returns the
// text that Convert would write.
func (c *Converter) StripString(ctx context.Context, src string) (string, error) {
	lines, _, err := ReadLines(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	if err := WriteLines(&b, c.stripper.Strip(lines, c.exprs)); err != nil {
		return "", err
	}
	return b.String(), nil
}
