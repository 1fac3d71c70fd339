// ABOUTME: E2E tests for the spotlight demo: tour panel, scrim frame, quit keys
// ABOUTME: Drives the real binary through a PTY; snapshot mode tested headless

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func TestDemo_ShowsFirstStep(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := startSpotlight(t)
	defer s.close()

	// The built-in tour opens on the Compose step.
	s.expectStringTimeout(t, "Compose", 10*time.Second)

	// The frame is rendered as half-block pixels.
	s.expectStringTimeout(t, "▄", 5*time.Second)

	s.send(t, "q")
	s.waitExit(t, 5*time.Second)
}

func TestDemo_NextAdvancesStep(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := startSpotlight(t)
	defer s.close()

	s.expectStringTimeout(t, "Compose", 10*time.Second)

	s.send(t, "n")
	s.expectStringTimeout(t, "Search", 5*time.Second)

	s.send(t, "q")
	s.waitExit(t, 5*time.Second)
}

func TestDemo_CtrlCExits(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := startSpotlight(t)
	defer s.close()

	s.expectStringTimeout(t, "Compose", 10*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestSnapshot_WritesPNG(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	out := filepath.Join(t.TempDir(), "frame.png")
	cmd := exec.Command(binaryPath(t), "--snapshot", "--out", out, "--width", "200", "--height", "300")
	if raw, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("snapshot run: %v\n%s", err, raw)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("output is not a PNG (%d bytes)", len(data))
	}
}
