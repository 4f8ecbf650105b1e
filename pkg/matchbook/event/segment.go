package event

import (
	"regexp"

	"github.com/ringarchive/matchbook/pkg/matchbook/dates"
	"github.com/ringarchive/matchbook/pkg/matchbook/parse"
)

// boldDateHeaderRe matches lines like "**12/5/2004 Osaka Furitsu Gym**"
// that open a new show block without an explicit separator before it.
var boldDateHeaderRe = regexp.MustCompile(`^\*\*.*\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}.*\*\*`)

// Segmenter splits a parsed file into its constituent events and
// assigns each one the earliest date found in its lines.
type Segmenter struct {
	dates *dates.Parser
}

func NewSegmenter(dp *dates.Parser) *Segmenter {
	return &Segmenter{dates: dp}
}

// Split walks the file's items in order, cutting a new event at each
// separator and at each bold date header that follows existing
// content. A buffer is emitted only when it holds at least one
// content item; header-only runs between boundaries are discarded. A
// non-empty file that produced no events yields one last-resort event
// wrapping the whole item list.
func (s *Segmenter) Split(pf parse.ParsedFile) []Event {
	var events []Event
	var buf []parse.ContentItem
	hasContent := false

	flush := func() {
		if hasContent {
			events = append(events, s.build(pf, buf))
		}
		buf = nil
		hasContent = false
	}

	for _, it := range pf.Items {
		if it.Kind == parse.KindSeparator {
			flush()
			continue
		}
		if it.Kind == parse.KindContent && boldDateHeaderRe.MatchString(it.Text) && len(buf) > 0 {
			flush()
		}
		buf = append(buf, it)
		if it.Kind == parse.KindContent {
			hasContent = true
		}
	}
	flush()

	if len(events) == 0 && len(pf.Items) > 0 {
		events = append(events, s.build(pf, pf.Items))
	}
	return events
}

func (s *Segmenter) build(pf parse.ParsedFile, items []parse.ContentItem) Event {
	ev := Event{
		Items:      items,
		SeriesName: pf.SeriesName,
		SourceFile: pf.SourceName,
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.Text
	}
	if d, ok := s.dates.Earliest(lines); ok {
		ev.Date = d
	}
	return ev
}
