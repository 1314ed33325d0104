package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/brainbar/internal/inbox"
)

const dateLayout = "2006-01-02"

func resolveDate(dateFlag string, now time.Time) (time.Time, error) {
	if dateFlag == "" {
		now = now.In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation(dateLayout, dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// noteText joins args, or reads r when there are none.
func noteText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(data), nil
}

func formatNote(note inbox.Note) string {
	lines := strings.Split(note.Body, "\n")

	builder := strings.Builder{}
	builder.Grow(len(note.Body) + 16*len(lines))
	builder.WriteString(note.Time.Format("15:04:05"))
	builder.WriteString("  ")
	builder.WriteString(lines[0])
	for _, line := range lines[1:] {
		builder.WriteString("\n          ")
		builder.WriteString(line)
	}
	return builder.String()
}

func printMissingDay(cmd *cobra.Command, date time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "No notes for %s\n", date.Format(dateLayout))
}

func printDay(cmd *cobra.Command, day inbox.DayLog) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", day.Date.Format(dateLayout))
	if len(day.Notes) == 0 {
		fmt.Fprintln(out, "(no notes)")
		return
	}
	for _, note := range day.Notes {
		fmt.Fprintln(out, formatNote(note))
	}
}
