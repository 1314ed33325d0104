package inbox

import "time"

// Note is a single captured entry: a time-of-day heading followed by one
// bullet holding the body.
type Note struct {
	Time time.Time `json:"time"`
	Body string    `json:"body"`
}

// DayLog groups the notes committed on one calendar date, in file order.
type DayLog struct {
	Date  time.Time `json:"date"`
	Notes []Note    `json:"notes"`
}
