package cli

import (
	"context"
	"testing"
	"time"

	"github.com/faizmokh/brainbar/internal/inbox"
)

func TestTodayCommandPrintsNotes(t *testing.T) {
	env := newTestEnvironment(t)
	store := inbox.NewStore(env.manager)

	if err := store.Append(context.Background(), "buy milk", time.Date(2025, time.November, 2, 9, 45, 0, 0, time.Local)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append(context.Background(), "call the bank\nask about fees", time.Date(2025, time.November, 2, 11, 10, 5, 0, time.Local)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	output := executeCommand(t, newTodayCommand(context.Background(), env), "--date", "2025-11-02")

	assertContains(t, output, "2025-11-02")
	assertContains(t, output, "09:45:00  buy milk")
	assertContains(t, output, "11:10:05  call the bank\n          ask about fees")
}

func TestTodayCommandDefaultsToCurrentDay(t *testing.T) {
	env := newTestEnvironment(t)
	if err := inbox.NewStore(env.manager).Append(context.Background(), "today's note", captureInstant); err != nil {
		t.Fatalf("Append: %v", err)
	}

	output := executeCommand(t, newTodayCommand(context.Background(), env))
	assertContains(t, output, "14:03:21  today's note")
}

func TestTodayCommandWithoutNotes(t *testing.T) {
	env := newTestEnvironment(t)

	output := executeCommand(t, newTodayCommand(context.Background(), env), "--date", "2025-11-03")
	assertContains(t, output, "No notes for 2025-11-03")
}

func TestTodayCommandRejectsBadDate(t *testing.T) {
	env := newTestEnvironment(t)
	cmd := newTodayCommand(context.Background(), env)
	cmd.SetArgs([]string{"--date", "02/11/2025"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected a parse error")
	}
}
