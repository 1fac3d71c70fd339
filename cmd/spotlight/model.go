// ABOUTME: Bubble Tea model for the spotlight demo TUI
// ABOUTME: Maps cell-based mouse events to the pixel canvas and drives the tour

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/spotlight-go/internal/log"
	"github.com/mauromedda/spotlight-go/internal/page"
	"github.com/mauromedda/spotlight-go/internal/tour"
	"github.com/mauromedda/spotlight-go/pkg/frame"
	"github.com/mauromedda/spotlight-go/pkg/overlay"
	"github.com/mauromedda/spotlight-go/pkg/overlay/paint"
)

var (
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type (
	tourEventMsg struct{ ev tour.Event }
	tickMsg      time.Time
)

// appShared holds state that must survive Bubble Tea's value-copying of
// the model between Update calls.
type appShared struct {
	page   *page.Page
	ctrl   *overlay.Controller
	tour   *tour.Tour
	canvas *paint.Canvas
}

type appModel struct {
	shared *appShared

	cols, rows int
	phase      float64
	panel      []string
	status     string
	started    bool
}

func newAppModel(style overlay.Style, steps []tour.Step) (appModel, *appShared) {
	shared := &appShared{
		page: page.New(),
		tour: tour.New(steps),
	}

	// The canvas is swapped on resize, so the painter closes over shared
	// rather than binding a specific canvas.
	painter := overlay.PainterFunc(func(p overlay.CutoutPath, s overlay.Style) {
		if shared.canvas != nil {
			shared.canvas.Paint(p, s)
		}
	})

	shared.ctrl = overlay.New(shared.page, painter)
	if err := shared.ctrl.SetStyle(style); err != nil {
		log.Warn("overlay style rejected, keeping default: %v", err)
	}
	shared.ctrl.SetOnScrimTap(func() { shared.tour.Next() })

	return appModel{shared: shared, status: "loading"}, shared
}

func (m appModel) Init() tea.Cmd {
	return tickCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tickMsg:
		m.phase += 0.15
		m.shared.page.SetPhase(m.phase)
		return m, tickCmd()

	case tourEventMsg:
		return m.applyTourEvent(msg.ev), nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// resize rebuilds the pixel canvas. Each terminal cell is one pixel
// wide and, through half-block rendering, two pixels tall.
func (m appModel) resize(msg tea.WindowSizeMsg) appModel {
	m.cols, m.rows = msg.Width, msg.Height
	if m.cols <= 0 || m.rows <= 0 {
		return m
	}

	size := overlay.Size{W: float64(m.cols), H: float64(m.rows * 2)}
	m.shared.page.Layout(size)
	m.shared.ctrl.SetViewport(size)
	m.shared.canvas = paint.NewCanvas(m.cols, m.rows*2)

	if !m.started {
		m.started = true
		m.shared.tour.Start()
	}
	return m
}

func (m appModel) applyTourEvent(ev tour.Event) appModel {
	if ev.Done {
		m.shared.ctrl.SetVisible(false)
		m.panel = nil
		m.status = "tour finished · n restart · q quit"
		return m
	}
	m.shared.ctrl.SetTargets([]overlay.Handle{ev.Step.Target})
	m.shared.ctrl.SetVisible(true)
	m.panel = m.renderStepPanel(ev)
	m.status = fmt.Sprintf("step %d/%d", ev.Index+1, ev.Total)
	return m
}

// click converts a cell coordinate to the pixel canvas and routes it:
// the overlay sees it first, and only pass-through events reach the
// page's own buttons.
func (m *appModel) click(cellX, cellY int) {
	pt := overlay.Point{X: float64(cellX) + 0.5, Y: (float64(cellY) + 0.5) * 2}
	if m.shared.ctrl.HandlePointer(pt) == overlay.Captured {
		return
	}
	if id, ok := m.shared.page.Hit(pt); ok {
		m.shared.page.Press(id)
		log.Debug("pressed %s", id)
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n", " ":
		if m.shared.tour.Active() {
			m.shared.tour.Next()
		} else {
			m.shared.tour.Start()
		}
	case "p":
		m.shared.tour.Prev()
	case "t":
		hidden := m.shared.page.Hidden(page.ButtonSend)
		m.shared.page.SetHidden(page.ButtonSend, !hidden)
	case "o":
		m.shared.ctrl.SetVisible(!m.shared.ctrl.Visible())
	}
	return m, nil
}

func (m appModel) View() string {
	canvas := m.shared.canvas
	if canvas == nil || m.cols <= 0 {
		return "loading"
	}

	canvas.Clear()
	m.shared.page.Draw(canvas.Context())
	m.shared.ctrl.RenderOnce()

	lines := frame.Lines(canvas.Image(), m.cols)

	panels := []frame.Panel{
		{Lines: []string{statusStyle.Render(m.status)}, Position: frame.Top},
	}
	if len(m.panel) > 0 {
		panels = append(panels, frame.Panel{Lines: m.panel, Position: frame.Bottom})
	}
	lines = frame.Composite(lines, m.cols, m.rows, panels...)
	return strings.Join(lines, "\n")
}

func (m appModel) renderStepPanel(ev tour.Event) []string {
	width := min(m.cols-4, 48)
	if width < 16 {
		width = 16
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d/%d)", ev.Step.Title, ev.Index+1, ev.Total)))
	b.WriteString("\n")
	b.WriteString(ev.Step.RenderBody(width - 4))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("click scrim or n: next · p: prev · q: quit"))

	box := panelStyle.Width(width).Render(b.String())
	return strings.Split(box, "\n")
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
