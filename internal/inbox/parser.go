package inbox

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"time"
)

// Parser incrementally reads a day log and emits notes as they are discovered.
type Parser struct {
	r        io.Reader
	date     time.Time
	scanner  *bufio.Scanner
	pending  *time.Time
	initDone bool
}

// NewParser returns a parser reading markdown from r. Note times are placed on
// the calendar date of date in its location.
func NewParser(r io.Reader, date time.Time) *Parser {
	return &Parser{r: r, date: date}
}

// NextNote returns the next note in the log, or io.EOF once the input is
// exhausted.
func (p *Parser) NextNote() (*Note, error) {
	if !p.initDone {
		if p.r == nil {
			return nil, io.EOF
		}
		p.scanner = bufio.NewScanner(p.r)
		p.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		p.initDone = true
	}
	if p.scanner == nil {
		return nil, io.EOF
	}

	when := p.pending
	p.pending = nil
	if when == nil {
		var err error
		when, err = p.consumeUntilHeading()
		if err != nil {
			return nil, err
		}
		if when == nil {
			return nil, io.EOF
		}
	}

	var (
		body    []string
		started bool
		blank   bool
	)
	for p.scanner.Scan() {
		line := strings.TrimRight(p.scanner.Text(), "\r")
		// Appends always open with a blank line, so a heading glued to the
		// previous body line is part of that body.
		boundary := !started || blank
		blank = strings.TrimSpace(line) == ""
		if boundary {
			if at, ok := p.parseHeading(line); ok {
				p.pending = &at
				break
			}
			if strings.HasPrefix(line, "## ") {
				// Foreign heading: ends the current note.
				break
			}
		}
		if !started {
			if rest, ok := strings.CutPrefix(line, "- "); ok {
				body = append(body, rest)
				started = true
			}
			continue
		}
		body = append(body, line)
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}

	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return &Note{Time: *when, Body: strings.Join(body, "\n")}, nil
}

func (p *Parser) consumeUntilHeading() (*time.Time, error) {
	for p.scanner.Scan() {
		if at, ok := p.parseHeading(strings.TrimRight(p.scanner.Text(), "\r")); ok {
			return &at, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

var headingPattern = regexp.MustCompile(`^## (\d{2}:\d{2}:\d{2})\s*$`)

func (p *Parser) parseHeading(line string) (time.Time, bool) {
	matches := headingPattern.FindStringSubmatch(line)
	if matches == nil {
		return time.Time{}, false
	}
	parsed, err := time.Parse(timeLayout, matches[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		p.date.Year(), p.date.Month(), p.date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
		p.date.Location(),
	), true
}
