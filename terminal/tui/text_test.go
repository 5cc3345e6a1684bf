package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"tab expands", "a\tb", "a    b"},
		{"controls dropped", "a\x00b\x1bc\r", "abc"},
		{"combining dropped", "e\u0301", "e"},
		{"wide replaced", "日本", "??"},
		{"newline kept", "a\nb", "a\nb"},
		{"box glyphs kept", "┏━┓", "┏━┓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"breaks at last space", "hello world foo", 11, []string{"hello world", "foo"}},
		{"hard break long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"word moves then hard breaks", "hi abcdefghij", 4, []string{"hi", "abcd", "efgh", "ij"}},
		{"explicit breaks kept", "a\n\nb", 5, []string{"a", "", "b"}},
		{"empty", "", 5, []string{""}},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, WrapText(tt.in, tt.width)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"x", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.max, tt.want, got)
		}
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("a\tb\n"); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
}
