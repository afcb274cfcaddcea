package tex2txt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxLineSize bounds a single input line (16MiB).
const MaxLineSize = 16 << 20

const (
	commentPrefix    = "%"
	blockBeginPrefix = `\begin{`
	blockEndPrefix   = `\end{`
)

// BlockState tracks whether the reader is inside a \begin{}...\end{} block.
// There is no depth counter: a nested \begin{ while skipping changes nothing,
// and the first \end{ returns to StateNormal.
type BlockState int

const (
	StateNormal   BlockState = iota // lines are kept
	StateSkipping                   // lines are dropped until \end{
)

// String implements fmt.Stringer.
func (s BlockState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateSkipping:
		return "skipping"
	default:
		return fmt.Sprintf("BlockState(%d)", int(s))
	}
}

// ReadStats counts what the reader did with each input line.
type ReadStats struct {
	Read     int // lines in the source
	Comments int // dropped "%" lines
	Blocks   int // dropped block lines, boundaries included
	Kept     int // lines passed on to the stripper
	Replaced int // kept lines containing U+FFFD, usually from invalid UTF-8
}

// lineFilter is the reader's state machine, separated from I/O so it can be
// driven line by line.
type lineFilter struct {
	state BlockState
	stats ReadStats
}

// keep reports whether line survives, updating state and counters.
func (f *lineFilter) keep(line string) bool {
	f.stats.Read++

	if strings.HasPrefix(line, commentPrefix) {
		f.stats.Comments++
		return false
	}

	switch f.state {
	case StateSkipping:
		if strings.HasPrefix(line, blockEndPrefix) {
			f.state = StateNormal
		}
		f.stats.Blocks++
		return false
	case StateNormal:
		if strings.HasPrefix(line, blockBeginPrefix) {
			f.state = StateSkipping
			f.stats.Blocks++
			return false
		}
	}

	f.stats.Kept++
	if strings.ContainsRune(line, utf8.RuneError) {
		f.stats.Replaced++
	}
	return true
}

// ReadFile reads the LaTeX document at path.
// Returns an error wrapping ErrNotFound (and fs.ErrNotExist) if path is not
// an existing regular file.
func ReadFile(path string) ([]string, ReadStats, error) {
	if err := requireFile(path, ErrReadInput); err != nil {
		return nil, ReadStats{}, err
	}

	f, err := os.Open(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}
	defer f.Close()

	lines, stats, err := ReadLines(f)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	return lines, stats, nil
}

// ReadLines filters a LaTeX document read from r. Line terminators ("\n" or
// "\r\n") are stripped. A leading byte-order mark is consumed, and a UTF-16
// BOM switches decoding to UTF-16.
func ReadLines(r io.Reader) ([]string, ReadStats, error) {
	sc := bufio.NewScanner(decodeText(r))
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var filter lineFilter
	var lines []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if filter.keep(line) {
			lines = append(lines, line)
		}
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, filter.stats, fmt.Errorf("%w: %w (max %d bytes)", ErrReadInput, ErrLineTooLong, MaxLineSize)
		}
		return nil, filter.stats, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return lines, filter.stats, nil
}

// decodeText strips a leading byte-order mark from r, switching to UTF-16
// when the mark says so. Invalid UTF-8 becomes U+FFFD.
func decodeText(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// requireFile returns an ErrNotFound error unless path is a regular file.
// Other stat failures are wrapped in readErr.
func requireFile(path string, readErr error) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", ErrNotFound, path, fs.ErrNotExist)
		}
		return fmt.Errorf("%w: %s: %w", readErr, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file: %w", ErrNotFound, path, fs.ErrNotExist)
	}
	return nil
}
