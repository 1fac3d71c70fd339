// ABOUTME: Markdown rendering of step bodies to ANSI via glamour
// ABOUTME: Falls back to the raw body when rendering fails

package tour

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/spotlight-go/internal/log"
)

// RenderBody renders the step body markdown to ANSI-styled text wrapped
// at width columns. Rendering failures degrade to the raw body rather
// than interrupting the tour.
func (s Step) RenderBody(width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Warn("tour: markdown renderer: %v", err)
		return s.Body
	}
	out, err := r.Render(s.Body)
	if err != nil {
		log.Warn("tour: rendering step %q: %v", s.Title, err)
		return s.Body
	}
	return strings.Trim(out, "\n")
}
