package statline

import "github.com/mattn/go-runewidth"

// ellipsis marks the span removed from the middle of an elided line.
const ellipsis = "..."

// ElideMiddle shortens text to exactly maxWidth runes by replacing a middle
// span with "...", preserving as much of the start and end as fits. Text
// that already fits is returned unchanged.
//
// Widths smaller than the ellipsis collapse to a truncated ellipsis.
func ElideMiddle(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text
	}
	if maxWidth <= 0 {
		return ""
	}
	if maxWidth <= len(ellipsis) {
		return ellipsis[:maxWidth]
	}
	keep := maxWidth - len(ellipsis)
	head := (keep + 1) / 2
	tail := keep - head
	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}

// VisualWidth returns the display width of a string in terminal cells,
// accounting for East Asian Wide characters and emoji.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}
