package tex2txt

// Notes:
// - ReadFile permission failures are not tested: root ignores file modes.
// - UTF-16 input is covered through a BOM-prefixed fixture only.

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestReadLines - Comment and block filtering
// ---------------------------------------------------------------------------

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain lines kept",
			input: "first\nsecond\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "comment lines dropped",
			input: "% preamble note\ntext\n%another\n",
			want:  []string{"text"},
		},
		{
			name:  "inline percent kept",
			input: "50 % of cases\n",
			want:  []string{"50 % of cases"},
		},
		{
			name:  "figure block dropped",
			input: "\\begin{figure}\n\\includegraphics{x}\n\\end{figure}\nKept line\n",
			want:  []string{"Kept line"},
		},
		{
			name:  "nested begin closes at first end",
			input: "\\begin{table}\n\\begin{tabular}{ll}\na & b\n\\end{tabular}\nleaked\n\\end{table}\nafter\n",
			want:  []string{"leaked", "\\end{table}", "after"},
		},
		{
			name:  "indented begin is not a block",
			input: "  \\begin{itemize}\n  \\item one\n  \\end{itemize}\n",
			want:  []string{"  \\begin{itemize}", "  \\item one", "  \\end{itemize}"},
		},
		{
			name:  "mid-line begin is not a block",
			input: "see \\begin{equation} x \\end{equation}\nnext\n",
			want:  []string{"see \\begin{equation} x \\end{equation}", "next"},
		},
		{
			name:  "stray end outside block kept",
			input: "\\end{document}\n",
			want:  []string{"\\end{document}"},
		},
		{
			name:  "comment inside block dropped",
			input: "\\begin{equation}\n% note\nx=1\n\\end{equation}\ny\n",
			want:  []string{"y"},
		},
		{
			name:  "unterminated block drops rest",
			input: "a\n\\begin{figure}\nb\nc\n",
			want:  []string{"a"},
		},
		{
			name:  "leading lines kept before first block",
			input: "intro\n\\begin{figure}\n\\end{figure}\n",
			want:  []string{"intro"},
		},
		{
			name:  "crlf endings trimmed",
			input: "one\r\n% c\r\ntwo\r\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "missing final newline",
			input: "one\ntwo",
			want:  []string{"one", "two"},
		},
		{
			name:  "empty lines kept",
			input: "a\n\nb\n",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "utf8 bom does not hide comment",
			input: "\ufeff% comment\ntext\n",
			want:  []string{"text"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := ReadLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadLines() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLines_Stats(t *testing.T) {
	t.Parallel()

	input := "% c1\ntext\n\\begin{figure}\nx\n\\end{figure}\n%c2\nmore\n"
	_, stats, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines() unexpected error: %v", err)
	}

	want := ReadStats{Read: 7, Comments: 2, Blocks: 3, Kept: 2}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	if stats.Read != stats.Comments+stats.Blocks+stats.Kept {
		t.Error("every line should be counted exactly once")
	}
}

func TestReadLines_UTF16(t *testing.T) {
	t.Parallel()

	// "% c\nok\n" as UTF-16LE with BOM.
	src := []byte{0xFF, 0xFE}
	for _, r := range "% c\nok\n" {
		src = append(src, byte(r), 0)
	}

	got, _, err := ReadLines(strings.NewReader(string(src)))
	if err != nil {
		t.Fatalf("ReadLines() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"ok"}) {
		t.Errorf("ReadLines() = %q, want [ok]", got)
	}
}

func TestReadLines_InvalidUTF8(t *testing.T) {
	t.Parallel()

	// Latin-1 "Größe" saved into a UTF-8 document, plus an invalid byte in a
	// comment, which is dropped and not counted.
	src := "Gr\xf6\xdfe\n% caf\xe9\nclean\n"

	got, stats, err := ReadLines(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadLines() unexpected error: %v", err)
	}
	if len(got) != 2 || !strings.ContainsRune(got[0], '\uFFFD') {
		t.Errorf("ReadLines() = %q, want replacement characters in line 1", got)
	}
	if stats.Replaced != 1 {
		t.Errorf("Replaced = %d, want 1", stats.Replaced)
	}
}

func TestReadLines_LineTooLong(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("x", MaxLineSize+1)
	_, _, err := ReadLines(strings.NewReader(input))
	if !errors.Is(err, ErrLineTooLong) {
		t.Errorf("ReadLines() error = %v, want ErrLineTooLong", err)
	}
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("ReadLines() error = %v, want ErrReadInput", err)
	}
}

// ---------------------------------------------------------------------------
// TestLineFilter - State transitions
// ---------------------------------------------------------------------------

func TestLineFilter_States(t *testing.T) {
	t.Parallel()

	var f lineFilter
	steps := []struct {
		line      string
		wantKeep  bool
		wantState BlockState
	}{
		{"text", true, StateNormal},
		{`\begin{align}`, false, StateSkipping},
		{`\begin{cases}`, false, StateSkipping},
		{"% comment", false, StateSkipping},
		{`\end{cases}`, false, StateNormal},
		{`\end{align}`, true, StateNormal},
	}

	for i, s := range steps {
		if got := f.keep(s.line); got != s.wantKeep {
			t.Errorf("step %d keep(%q) = %v, want %v", i, s.line, got, s.wantKeep)
		}
		if f.state != s.wantState {
			t.Errorf("step %d state = %v, want %v", i, f.state, s.wantState)
		}
	}
}

func TestBlockState_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state BlockState
		want  string
	}{
		{StateNormal, "normal"},
		{StateSkipping, "skipping"},
		{BlockState(9), "BlockState(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReadFile - File handling
// ---------------------------------------------------------------------------

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "chapter.tex")
	if err := os.WriteFile(path, []byte("% c\nBody\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, stats, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"Body"}) {
		t.Errorf("lines = %q, want [Body]", lines)
	}
	if stats.Kept != 1 {
		t.Errorf("stats.Kept = %d, want 1", stats.Kept)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.tex")},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ReadFile(tt.path)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("ReadFile() error = %v, want ErrNotFound", err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q should name the path", err.Error())
			}
		})
	}
}
