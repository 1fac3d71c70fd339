// ABOUTME: Display-width measurement of styled lines for panel alignment
// ABOUTME: Grapheme-cluster aware via uniseg; per-rune widths via go-runewidth

package frame

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s in terminal cells. ANSI
// escape sequences contribute zero width; grapheme clusters may be wider
// than one cell (East Asian characters, emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, next := uniseg.FirstGraphemeClusterInString(stripped, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
		stripped = rest
		state = next
	}
	return w
}

// isPlainASCII reports whether s is printable ASCII with no escapes, the
// fast path where width equals byte length.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
