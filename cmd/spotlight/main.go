// ABOUTME: CLI entry point for the spotlight demo
// ABOUTME: Parses flags, loads the tour, dispatches to TUI or PNG snapshot mode

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/spotlight-go/internal/config"
	"github.com/mauromedda/spotlight-go/internal/log"
	"github.com/mauromedda/spotlight-go/internal/page"
	"github.com/mauromedda/spotlight-go/internal/tour"
	"github.com/mauromedda/spotlight-go/pkg/overlay"
	"github.com/mauromedda/spotlight-go/pkg/overlay/paint"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("spotlight %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(slog.LevelDebug)
	}

	cfg, err := loadTour(args.tour)
	if err != nil {
		return err
	}

	style, err := cfg.OverlayStyle()
	if err != nil {
		return fmt.Errorf("tour style: %w", err)
	}

	steps := make([]tour.Step, len(cfg.Steps))
	for i, s := range cfg.Steps {
		steps[i] = tour.Step{Target: s.Target, Title: s.Title, Body: s.Body}
	}

	// Without a terminal there is nothing to animate; fall back to a
	// one-frame PNG so piped invocations still produce something useful.
	if args.snapshot || !term.IsTerminal(int(os.Stdout.Fd())) {
		return snapshot(args, style, steps)
	}

	return runInteractive(style, steps)
}

// loadTour reads the tour file, or returns the built-in demo tour when
// no path was given.
func loadTour(path string) (config.File, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	cfg.Steps = []config.Step{
		{Target: page.ButtonCompose, Title: "Compose", Body: "Start a new message with the **Compose** button."},
		{Target: page.ButtonSearch, Title: "Search", Body: "Find anything with *Search*."},
		{Target: page.ButtonSend, Title: "Send", Body: "The floating **Send** button follows the layout as it moves."},
	}
	return cfg, nil
}

// snapshot renders the first tour step into a PNG and exits.
func snapshot(args cliArgs, style overlay.Style, steps []tour.Step) error {
	if args.width <= 0 || args.height <= 0 {
		return fmt.Errorf("snapshot size %dx%d is not positive", args.width, args.height)
	}

	scene := page.New()
	scene.Layout(overlay.Size{W: float64(args.width), H: float64(args.height)})

	canvas := paint.NewCanvas(args.width, args.height)
	scene.Draw(canvas.Context())

	ctrl := overlay.New(scene, canvas)
	ctrl.SetViewport(canvas.Size())
	if err := ctrl.SetStyle(style); err != nil {
		return err
	}
	if len(steps) > 0 {
		ctrl.SetTargets([]overlay.Handle{steps[0].Target})
	}
	ctrl.SetVisible(true)
	ctrl.RenderOnce()

	if err := canvas.Context().SavePNG(args.out); err != nil {
		return fmt.Errorf("writing %s: %w", args.out, err)
	}
	log.Info("snapshot written to %s", args.out)
	return nil
}

// runInteractive starts the Bubble Tea demo.
func runInteractive(style overlay.Style, steps []tour.Step) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, shared := newAppModel(style, steps)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	unsub := shared.tour.Subscribe(func(ev tour.Event) {
		prog.Send(tourEventMsg{ev: ev})
	})
	defer unsub()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := prog.Run()
		stop()
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		prog.Quit()
		return nil
	})
	return g.Wait()
}
