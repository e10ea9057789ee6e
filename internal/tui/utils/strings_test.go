package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "printer", 10, "printer"},
		{"exact", "printer", 7, "printer"},
		{"cut with ellipsis", "printer.local.", 8, "printer…"},
		{"zero width", "printer", 0, ""},
		{"negative width", "printer", -1, ""},
		{"single cell", "printer", 1, "p"},
		{"wide runes not split", "日本語サービス", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			if tt.width > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.width)
			}
		})
	}
}
