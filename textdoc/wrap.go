package textdoc

import "strings"

// Measurer provides the font metrics needed to lay out text.
type Measurer interface {
	// StringWidth returns the advance width of s set in font f.
	StringWidth(f Font, s string) float64
	// LineHeight returns the distance between baselines for font f.
	LineHeight(f Font) float64
}

// SplitLines breaks text into lines no wider than width. Explicit newlines
// are kept; words wider than width are broken between runes.
func SplitLines(m Measurer, f Font, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		start := len(lines)
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if m.StringWidth(f, candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			for m.StringWidth(f, word) > width {
				head, tail := breakWord(m, f, word, width)
				lines = append(lines, head)
				word = tail
			}
			line = word
		}
		if line != "" || len(lines) == start {
			lines = append(lines, line)
		}
	}
	return lines
}

// breakWord splits word at the last rune that still fits. At least one rune
// is always taken so the caller makes progress.
func breakWord(m Measurer, f Font, word string, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.StringWidth(f, string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
