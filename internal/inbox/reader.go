package inbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/faizmokh/brainbar/internal/files"
)

// Reader loads day logs back into notes.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Day returns every note recorded on date's calendar day.
func (r *Reader) Day(ctx context.Context, date time.Time) (DayLog, error) {
	if r == nil || r.manager == nil {
		return DayLog{}, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return DayLog{}, err
	}

	path := r.manager.DayPath(date)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DayLog{}, ErrDayNotFound
		}
		return DayLog{}, fmt.Errorf("open day log: %w", err)
	}
	defer file.Close()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	log := DayLog{Date: day}

	parser := NewParser(file, day)
	for {
		note, err := parser.NextNote()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return log, nil
			}
			return DayLog{}, err
		}
		log.Notes = append(log.Notes, *note)
	}
}
