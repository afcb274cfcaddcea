package hints

import (
	"strings"
	"testing"
)

func TestForInputNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing extension", "chapters/intro", "chapters/intro.tex"},
		{"with extension", "chapters/intro.tex", "working directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForInputNotFound(tt.path)
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", hint)
			}
			if !strings.Contains(hint, tt.want) {
				t.Errorf("hint %q should contain %q", hint, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"thesis.yaml", "/home/u/.config/go-tex2txt/thesis.yaml"})
		if !strings.Contains(hint, "--config") {
			t.Errorf("hint %q should mention --config", hint)
		}
		if !strings.Contains(hint, "create /home/u/.config/go-tex2txt/thesis.yaml") {
			t.Errorf("hint %q should suggest the user config path", hint)
		}
	})

	t.Run("no user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"thesis.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("hint %q should not suggest creating a file", hint)
		}
	})
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for _, hint := range []string{ForExpressionsNotFound(), ForDefaultsNotFound(), ForOutputDirectory()} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint %q missing prefix", hint)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
