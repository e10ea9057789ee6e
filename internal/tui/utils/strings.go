package utils

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// TruncateString cuts s to at most width terminal cells, ending with an
// ellipsis when anything was removed. Wide runes are never split.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}
