// ABOUTME: PTY test harness: builds the spotlight binary once and drives it
// ABOUTME: Provides expect/send helpers over the pseudo-terminal output stream

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	builtBin  string
	buildErr  error
)

// binaryPath builds cmd/spotlight once per test run and returns the
// binary location.
func binaryPath(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "spotlight-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		bin := filepath.Join(dir, "spotlight")
		cmd := exec.Command("go", "build", "-o", bin, "../cmd/spotlight")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %v\n%s", err, out)
			return
		}
		builtBin = bin
	})
	if buildErr != nil {
		t.Fatalf("building spotlight binary: %v", buildErr)
	}
	return builtBin
}

type session struct {
	cmd  *exec.Cmd
	ptmx *os.File
	done chan struct{}

	mu  sync.Mutex
	buf bytes.Buffer
}

// startSpotlight launches the binary on a pseudo-terminal and begins
// capturing its output.
func startSpotlight(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(binaryPath(t), args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 30, Cols: 80})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan struct{})}
	go s.readLoop()
	go func() {
		_ = cmd.Wait()
		close(s.done)
	}()
	return s
}

func (s *session) readLoop() {
	chunk := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(chunk)
		if n > 0 {
			s.mu.Lock()
			s.buf.Write(chunk[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// expectStringTimeout polls the captured output until want appears.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	out := s.output()
	if len(out) > 2000 {
		out = out[len(out)-2000:]
	}
	t.Fatalf("timed out waiting for %q; last output:\n%s", want, out)
}

func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(text); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string([]byte{c & 0x1f}))
}

func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatal("process did not exit in time")
	}
}

func (s *session) close() {
	_ = s.ptmx.Close()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
	}
}
