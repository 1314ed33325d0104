package inbox

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/faizmokh/brainbar/internal/files"
)

// Store appends notes to the day log matching their commit instant.
type Store struct {
	manager *files.Manager
}

// NewStore wires a store onto the shared files.Manager.
func NewStore(manager *files.Manager) *Store {
	return &Store{manager: manager}
}

// Append writes note as a new section at the end of the day log for at. The
// file is created when missing; existing content is never rewritten.
func (s *Store) Append(ctx context.Context, note string, at time.Time) error {
	if s == nil || s.manager == nil {
		return fmt.Errorf("store not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := strings.TrimSpace(note)
	if body == "" {
		return ErrEmptyNote
	}

	if err := s.manager.EnsureDir(); err != nil {
		return &IOError{Op: "mkdir", Path: s.manager.BasePath(), Err: err}
	}

	path := s.manager.DayPath(at)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, files.FilePermissions)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}

	if _, err := file.WriteString(FormatFragment(body, at)); err != nil {
		file.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// Path reports the day log that Append would write for at.
func (s *Store) Path(at time.Time) string {
	return s.manager.DayPath(at)
}

// FormatFragment renders the markdown appended for a single note.
func FormatFragment(body string, at time.Time) string {
	var builder strings.Builder
	builder.Grow(len(body) + 20)
	builder.WriteString("\n## ")
	builder.WriteString(at.Format(timeLayout))
	builder.WriteString("\n- ")
	builder.WriteString(body)
	builder.WriteByte('\n')
	return builder.String()
}

const timeLayout = "15:04:05"
