// Package event groups parsed content items into dated wrestling events.
package event

import (
	"strings"
	"time"

	"github.com/ringarchive/matchbook/pkg/matchbook/parse"
)

// Event is a contiguous run of content belonging to a single show.
// Date is the zero time when no date could be recovered from the text.
type Event struct {
	Items      []parse.ContentItem
	SeriesName string
	SourceFile string
	Date       time.Time
}

// HasDate reports whether a date was recovered for the event.
func (e *Event) HasDate() bool {
	return !e.Date.IsZero()
}

// Text renders the event back into markdown-shaped lines. Headers get
// their hash prefixes restored and separators render as the canonical
// separator rune pair.
func (e *Event) Text() string {
	var b strings.Builder
	for i, it := range e.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch it.Kind {
		case parse.KindHeader:
			b.WriteString(strings.Repeat("#", it.Level))
			b.WriteByte(' ')
			b.WriteString(it.Text)
		case parse.KindSeparator:
			b.WriteString(parse.Separator)
		default:
			b.WriteString(it.Text)
		}
	}
	return b.String()
}
