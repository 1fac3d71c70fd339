// ABOUTME: Demo scene: title and buttons drawn with gg onto the frame canvas
// ABOUTME: Implements overlay.Resolver so buttons double as spotlight targets

package page

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/mauromedda/spotlight-go/pkg/overlay"
)

// Well-known button ids used as spotlight target handles.
const (
	ButtonCompose = "compose"
	ButtonSearch  = "search"
	ButtonProfile = "profile"
	ButtonSend    = "send"
)

var (
	colorBackground = color.NRGBA{R: 0x1e, G: 0x22, B: 0x2e, A: 0xff}
	colorText       = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	colorCompose    = color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	colorSearch     = color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	colorProfile    = color.NRGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff}
	colorSend       = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
)

// Button is one interactive region of the page.
type Button struct {
	ID    string
	Label string
	Fill  color.NRGBA

	// Floating buttons bob vertically with the animation phase, which
	// exercises per-frame target re-resolution.
	Floating bool

	hidden  bool
	presses int
	rect    overlay.Rect
	laidOut bool
}

// Page is the content beneath the overlay: a title plus a handful of
// buttons. It owns their layout and serves as the overlay's resolver.
type Page struct {
	mu      sync.Mutex
	title   string
	buttons []*Button
	size    overlay.Size
	phase   float64
}

// New creates the demo page.
func New() *Page {
	return &Page{
		title: "spotlight demo",
		buttons: []*Button{
			{ID: ButtonCompose, Label: "Compose", Fill: colorCompose},
			{ID: ButtonSearch, Label: "Search", Fill: colorSearch},
			{ID: ButtonProfile, Label: "Profile", Fill: colorProfile},
			{ID: ButtonSend, Label: "Send", Fill: colorSend, Floating: true},
		},
	}
}

// Layout recomputes button rectangles for the given viewport size.
// Buttons that do not fit stay un-laid-out and resolve as not live.
func (p *Page) Layout(size overlay.Size) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.size = size
	p.layoutLocked()
}

// SetPhase advances the animation phase driving the floating button and
// recomputes layout. The overlay never caches resolved rects, so the
// cutout follows without any extra wiring.
func (p *Page) SetPhase(phase float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phase = phase
	p.layoutLocked()
}

func (p *Page) layoutLocked() {
	const (
		margin  = 24.0
		btnH    = 44.0
		spacing = 18.0
		topPad  = 60.0
	)
	if p.size.W <= 0 || p.size.H <= 0 {
		for _, b := range p.buttons {
			b.laidOut = false
		}
		return
	}

	btnW := math.Min(220, p.size.W-2*margin)
	y := topPad
	for _, b := range p.buttons {
		if b.Floating {
			bob := 12 * math.Sin(p.phase)
			b.rect = overlay.Rect{
				X: margin,
				Y: p.size.H - btnH - 36 + bob,
				W: math.Min(120, btnW),
				H: btnH,
			}
			b.laidOut = b.rect.Y > 0 && b.rect.Y+b.rect.H < p.size.H
			continue
		}
		b.rect = overlay.Rect{X: margin, Y: y, W: btnW, H: btnH}
		b.laidOut = btnW > 0 && y+btnH < p.size.H
		y += btnH + spacing
	}
}

// Resolve implements overlay.Resolver. Hidden or un-laid-out buttons
// report not live, which the overlay treats as a normal transient miss.
func (p *Page) Resolve(h overlay.Handle) (overlay.Rect, bool) {
	id, ok := h.(string)
	if !ok {
		return overlay.Rect{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.buttons {
		if b.ID == id {
			if b.hidden || !b.laidOut {
				return overlay.Rect{}, false
			}
			return b.rect, true
		}
	}
	return overlay.Rect{}, false
}

// Hit returns the id of the visible button containing pt.
func (p *Page) Hit(pt overlay.Point) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.buttons {
		if !b.hidden && b.laidOut && b.rect.Contains(pt) {
			return b.ID, true
		}
	}
	return "", false
}

// Press records a click on the named button and returns its new count.
func (p *Page) Press(id string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.buttons {
		if b.ID == id {
			b.presses++
			return b.presses
		}
	}
	return 0
}

// SetHidden shows or hides a button, e.g. to demonstrate a target
// leaving and rejoining the screen.
func (p *Page) SetHidden(id string, hidden bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.buttons {
		if b.ID == id {
			b.hidden = hidden
			return
		}
	}
}

// Hidden reports whether the named button is hidden.
func (p *Page) Hidden(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.buttons {
		if b.ID == id {
			return b.hidden
		}
	}
	return false
}

// Draw renders the page into dc. The overlay scrim is painted on top of
// this by the controller.
func (p *Page) Draw(dc *gg.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dc.SetColor(colorBackground)
	dc.Clear()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorText)
	dc.DrawString(p.title, 24, 34)

	for _, b := range p.buttons {
		if b.hidden || !b.laidOut {
			continue
		}
		dc.SetColor(b.Fill)
		dc.DrawRoundedRectangle(b.rect.X, b.rect.Y, b.rect.W, b.rect.H, 8)
		dc.Fill()

		label := b.Label
		if b.presses > 0 {
			label = fmt.Sprintf("%s (%d)", b.Label, b.presses)
		}
		dc.SetColor(colorText)
		dc.DrawStringAnchored(label, b.rect.X+b.rect.W/2, b.rect.Y+b.rect.H/2, 0.5, 0.35)
	}
}
