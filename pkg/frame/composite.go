// ABOUTME: Composites pre-styled text panels over rendered frame lines
// ABOUTME: Panels replace whole rows; horizontal centering pads by visible width

package frame

import "strings"

// Position selects where a panel lands vertically within the frame.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Panel is a block of pre-styled lines composited over a frame. Width is
// the frame width in columns used for horizontal centering; a panel line
// wider than the frame is left untouched.
type Panel struct {
	Lines    []string
	Position Position
}

// Composite overlays panels onto base, replacing whole rows. base is
// extended with blank lines when a panel reaches past its end; height
// bounds the vertical placement calculations. The input slice is not
// modified.
func Composite(base []string, width, height int, panels ...Panel) []string {
	out := make([]string, len(base))
	copy(out, base)

	for _, p := range panels {
		rows := len(p.Lines)
		if rows == 0 {
			continue
		}

		var start int
		switch p.Position {
		case Center:
			start = (height - rows) / 2
		case Top:
			start = 0
		case Bottom:
			start = height - rows
		}
		if start < 0 {
			start = 0
		}

		for len(out) < start+rows {
			out = append(out, "")
		}
		for i, line := range p.Lines {
			out[start+i] = centerLine(line, width)
		}
	}
	return out
}

// centerLine pads line with spaces so its visible content sits centered
// in width columns.
func centerLine(line string, width int) string {
	w := VisibleWidth(line)
	if w >= width {
		return line
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
}
