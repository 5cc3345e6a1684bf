package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

// tabWidth is the number of spaces a tab expands to
const tabWidth = 4

// widths measures runes as a non-CJK terminal does, so ambiguous-width
// box and block glyphs count as one cell regardless of locale
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Sanitize makes s safe for one-rune-per-cell placement
// Tabs expand to spaces, zero-width and control runes are dropped and
// double-width runes become '?'. Newlines are kept
func Sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			sb.WriteRune(r)
		case r == '\t':
			sb.WriteString(strings.Repeat(" ", tabWidth))
		case widths.RuneWidth(r) == 0:
			// Control or combining rune
		case widths.RuneWidth(r) > 1:
			sb.WriteByte('?')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// RuneLen returns the number of cells s occupies after Sanitize, ignoring newlines
func RuneLen(s string) int {
	n := 0
	for _, r := range Sanitize(s) {
		if r != '\n' {
			n++
		}
	}
	return n
}

// Truncate truncates string with … suffix if exceeds maxLen
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// WrapText wraps text at word boundaries to fit width
// Explicit newlines are kept; a word longer than width is split across lines
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	s = Sanitize(s)
	if s == "" {
		return []string{""}
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		wrapped := wordwrap.WrapString(para, uint(width))
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, hardBreak(line, width)...)
		}
	}
	return lines
}

// hardBreak splits a line into width-sized pieces
func hardBreak(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}
	var out []string
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	return append(out, string(runes))
}
