package format

import (
	"regexp"
	"strings"

	"github.com/ringarchive/matchbook/pkg/matchbook/dates"
	"github.com/ringarchive/matchbook/pkg/matchbook/event"
	"github.com/ringarchive/matchbook/pkg/matchbook/parse"
)

// circledGlyphs indexes matches within an event. Events with more
// than ten matches reuse the last glyph.
var circledGlyphs = []string{"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩"}

var (
	leadingCircledRe = regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩⓪]\s*`)
	timeFinishRe     = regexp.MustCompile(`^\(\d{1,2}:\d{2}`)
	wordMatchRe      = regexp.MustCompile(`(?i)\bmatch\b`)
)

type mode int

const (
	modeDateVenue mode = iota
	modeInMatch
	modeOther
)

// state carries the formatter position between items. The match
// counter resets at every event boundary.
type state struct {
	mode       mode
	matchCount int
}

// FallbackFormatter renders an event into canonical notation without
// any external assistance. It trusts result glyphs already present in
// the source lines and never invents new ones.
type FallbackFormatter struct {
	dates *dates.Parser
}

func NewFallbackFormatter(dp *dates.Parser) *FallbackFormatter {
	return &FallbackFormatter{dates: dp}
}

// Format runs the state machine over the event's items and returns
// the newline-joined output.
func (f *FallbackFormatter) Format(ev *event.Event) string {
	st := state{mode: modeDateVenue}
	var out []string
	for _, it := range ev.Items {
		var lines []string
		st, lines = f.step(st, it)
		out = append(out, lines...)
	}
	return strings.Join(out, "\n")
}

// step maps one item onto its output lines and the next state. It is
// a pure function of its inputs.
func (f *FallbackFormatter) step(st state, it parse.ContentItem) (state, []string) {
	switch it.Kind {
	case parse.KindSeparator:
		return state{mode: modeDateVenue}, []string{parse.Separator, ""}
	case parse.KindHeader:
		line := strings.Repeat("#", it.Level) + " " + it.Text
		return state{mode: modeDateVenue, matchCount: st.matchCount}, []string{line, ""}
	}

	line := it.Text
	if isMatchHeader(line) {
		st.matchCount++
		body := ClassifyMatchType(leadingCircledRe.ReplaceAllString(line, ""), 0)
		st.mode = modeInMatch
		return st, []string{glyphFor(st.matchCount) + " " + body}
	}

	switch st.mode {
	case modeDateVenue:
		if f.isDateVenue(line) {
			return st, []string{line}
		}
		st.mode = modeOther
		return st, []string{line, ""}
	case modeInMatch:
		return f.stepInMatch(st, line)
	default:
		return st, []string{line, ""}
	}
}

func (f *FallbackFormatter) stepInMatch(st state, line string) (state, []string) {
	lower := strings.ToLower(line)
	switch {
	case lower == "vs", len([]rune(line)) < 5 && strings.Contains(lower, "vs"):
		return st, []string{"vs"}
	case strings.Contains(line, " vs "):
		parts := strings.Split(line, " vs ")
		out := make([]string, 0, 2*len(parts)-1)
		for i, p := range parts {
			if i > 0 {
				out = append(out, "vs")
			}
			out = append(out, strings.TrimSpace(p))
		}
		return st, out
	case timeFinishRe.MatchString(line):
		st.mode = modeOther
		return st, []string{line, ""}
	default:
		// championship notes and wrestler lines pass through with
		// whatever glyphs the source carries
		return st, []string{line}
	}
}

func (f *FallbackFormatter) isDateVenue(line string) bool {
	if f.dates.HasDate(line) {
		return true
	}
	if strings.Contains(strings.ToLower(line), "attendance") {
		return true
	}
	for _, kw := range []string{"Hall", "Center", "Arena", "Gym", "Dome"} {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

func isMatchHeader(line string) bool {
	return leadingCircledRe.MatchString(line) ||
		matchPhraseRe.MatchString(line) ||
		wordMatchRe.MatchString(line)
}

func glyphFor(n int) string {
	if n < 1 {
		n = 1
	}
	if n > len(circledGlyphs) {
		n = len(circledGlyphs)
	}
	return circledGlyphs[n-1]
}
