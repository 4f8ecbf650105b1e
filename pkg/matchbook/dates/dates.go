// Package dates extracts calendar dates from free-form wrestling result text.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Bounds is the plausible year window for show dates, exclusive on both ends.
type Bounds struct {
	After  int
	Before int
}

// DefaultBounds accepts years strictly between 1900 and 2100.
func DefaultBounds() Bounds {
	return Bounds{After: 1900, Before: 2100}
}

// fieldOrder describes which capture group holds which date field.
type fieldOrder int

const (
	orderMDY fieldOrder = iota
	orderYMD
	orderNameDY // month name, day, year
)

type pattern struct {
	re    *regexp.Regexp
	order fieldOrder
}

// Patterns are tried against every line; all matches are candidates.
var patterns = []pattern{
	{regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`), orderMDY},
	{regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`), orderMDY},
	{regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`), orderMDY},
	{regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`), orderYMD},
	{regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`), orderNameDY},
}

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

// monthByName resolves a full or three-letter month name, case-insensitive.
func monthByName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	if m, ok := months[name]; ok {
		return m, true
	}
	if len(name) == 3 {
		for full, m := range months {
			if strings.HasPrefix(full, name) {
				return m, true
			}
		}
	}
	return 0, false
}

// Parser extracts dates using a fixed ordered pattern set.
type Parser struct {
	bounds Bounds
}

// NewParser creates a parser with the given year bounds.
func NewParser(b Bounds) *Parser {
	if b.After == 0 && b.Before == 0 {
		b = DefaultBounds()
	}
	return &Parser{bounds: b}
}

// DatesIn returns every valid date found in text, in pattern order.
// Matches with impossible calendar values or years outside the bounds
// are dropped silently.
func (p *Parser) DatesIn(text string) []time.Time {
	var out []time.Time
	for _, pat := range patterns {
		for _, m := range pat.re.FindAllStringSubmatch(text, -1) {
			d, ok := p.fromMatch(m, pat.order)
			if ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// Earliest scans every line and returns the earliest valid date found,
// by calendar value rather than text position.
func (p *Parser) Earliest(lines []string) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, line := range lines {
		for _, d := range p.DatesIn(line) {
			if !found || d.Before(earliest) {
				earliest = d
				found = true
			}
		}
	}
	return earliest, found
}

// HasDate reports whether text contains anything shaped like a date.
// Calendar validity is not checked; this backs keep/drop heuristics only.
func (p *Parser) HasDate(text string) bool {
	for _, pat := range patterns {
		if pat.re.MatchString(text) {
			return true
		}
	}
	return false
}

func (p *Parser) fromMatch(m []string, order fieldOrder) (time.Time, bool) {
	var year, day int
	var month time.Month

	switch order {
	case orderMDY:
		mo, _ := strconv.Atoi(m[1])
		day, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		month = time.Month(mo)
	case orderYMD:
		year, _ = strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
		month = time.Month(mo)
	case orderNameDY:
		mo, ok := monthByName(m[1])
		if !ok {
			return time.Time{}, false
		}
		month = mo
		day, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	}

	if year <= p.bounds.After || year >= p.bounds.Before {
		return time.Time{}, false
	}
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible days (Apr 31 -> May 1); reject those.
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
