package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/faizmokh/brainbar/internal/inbox"
)

func TestAddCommandAppendsJoinedArgs(t *testing.T) {
	env := newTestEnvironment(t)

	output := executeCommand(t, newAddCommand(context.Background(), env), "buy", "milk")
	assertContains(t, output, "Saved to "+env.manager.DayPath(captureInstant))

	data, err := os.ReadFile(env.manager.DayPath(captureInstant))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(data), "\n## 14:03:21\n- buy milk\n"; got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestAddCommandReadsStdin(t *testing.T) {
	env := newTestEnvironment(t)
	cmd := newAddCommand(context.Background(), env)
	cmd.SetIn(strings.NewReader("  first\nsecond  \n"))

	executeCommand(t, cmd)

	data, err := os.ReadFile(env.manager.DayPath(captureInstant))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(data), "\n## 14:03:21\n- first\nsecond\n"; got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestAddCommandRejectsBlankNote(t *testing.T) {
	env := newTestEnvironment(t)
	cmd := newAddCommand(context.Background(), env)
	cmd.SetIn(strings.NewReader(" \n\t"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); !errors.Is(err, inbox.ErrEmptyNote) {
		t.Fatalf("Execute error = %v, want ErrEmptyNote", err)
	}
	if _, err := os.Stat(env.manager.DayPath(captureInstant)); !os.IsNotExist(err) {
		t.Fatalf("day file should not exist, stat err = %v", err)
	}
}

func TestAddCommandFromClipboard(t *testing.T) {
	env := newTestEnvironment(t)
	env.readClipboard = func() (string, error) { return "https://example.com/article\n", nil }

	executeCommand(t, newAddCommand(context.Background(), env), "--clipboard")

	data, err := os.ReadFile(env.manager.DayPath(captureInstant))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(data), "\n## 14:03:21\n- https://example.com/article\n"; got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestAddCommandClipboardFailure(t *testing.T) {
	env := newTestEnvironment(t)
	env.readClipboard = func() (string, error) { return "", errors.New("no clipboard utility") }

	cmd := newAddCommand(context.Background(), env)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--clipboard"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "read clipboard") {
		t.Fatalf("Execute error = %v", err)
	}
}
