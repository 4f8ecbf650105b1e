package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ringarchive/matchbook/pkg/matchbook/dates"
)

// FilterConfig holds the line-length thresholds of the prose filter.
type FilterConfig struct {
	ShortLine int `yaml:"short_line"`
	MidLine   int `yaml:"mid_line"`
	LongLine  int `yaml:"long_line"`
}

// DefaultFilterConfig returns the thresholds tuned on the archive.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{ShortLine: 50, MidLine: 100, LongLine: 200}
}

var (
	boldLineRe   = regexp.MustCompile(`^\*\*.*\*\*$`)
	matchTypeRe  = regexp.MustCompile(`(?i)(singles|tag team|man tag|battle royal|championship|elimination)\s+match`)
	circledRe    = regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩⓪]`)
	timeParenRe  = regexp.MustCompile(`^\(\d{1,2}:\d{2}.*\)$`)
	vsTokenRe    = regexp.MustCompile(`(?i)\bvs\b`)
	monthNameRe  = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\b`)
	listingRe    = regexp.MustCompile(`^\d+\.`)
	defenseRe    = regexp.MustCompile(`(?i)\d+(st|nd|rd|th)\s+Defense`)
	timeHintRe   = regexp.MustCompile(`\(\d+:\d+`)
	narrativeRe  = regexp.MustCompile(`^\p{Lu}\p{Ll}+ (?i:said|talked|admitted|revealed|challenged|asked|thanked|promised|considered|hoped|began|interrupted|invited|appeared|changed|gathered)\b`)
	interviewRe  = regexp.MustCompile(`(?i)^(An interview|A conversation|The interview|Backstage)`)
	storylineRe  = regexp.MustCompile(`(?i)^(After|Before|During|Following) (the match|match \d+)`)
	resultGlyphs = []string{"⭕", "❌", "▲", "△"}
)

// ProseFilter decides, line by line, whether text is wrestling data to
// keep or narrative prose to drop. The whitelist runs before the
// blacklist on purpose: short result lines must never be lost even when
// they read like sentence fragments.
type ProseFilter struct {
	cfg   FilterConfig
	dates *dates.Parser
}

// NewProseFilter creates a filter with the given thresholds, using dp
// to recognize date-bearing lines.
func NewProseFilter(cfg FilterConfig, dp *dates.Parser) *ProseFilter {
	if cfg.ShortLine == 0 {
		cfg = DefaultFilterConfig()
	}
	return &ProseFilter{cfg: cfg, dates: dp}
}

// Keep reports whether a trimmed line is wrestling data.
func (f *ProseFilter) Keep(line string) bool {
	line = strings.TrimSpace(line)
	if f.whitelisted(line) {
		return true
	}
	return !f.blacklisted(line)
}

func (f *ProseFilter) whitelisted(line string) bool {
	switch {
	case boldLineRe.MatchString(line):
		return true
	case f.dates.HasDate(line):
		return true
	case strings.Contains(strings.ToLower(line), "attendance"):
		return true
	case matchTypeRe.MatchString(line):
		return true
	case circledRe.MatchString(line):
		return true
	case hasResultGlyph(line):
		return true
	case timeParenRe.MatchString(line):
		return true
	case vsTokenRe.MatchString(line):
		return true
	case utf8.RuneCountInString(line) <= f.cfg.ShortLine:
		return true
	}
	return false
}

func (f *ProseFilter) blacklisted(line string) bool {
	length := utf8.RuneCountInString(line)
	switch {
	case length > f.cfg.LongLine:
		return true
	case narrativeRe.MatchString(line):
		return true
	case interviewRe.MatchString(line):
		return true
	case storylineRe.MatchString(line):
		return true
	case length > f.cfg.MidLine && !f.hasDataHint(line):
		return true
	}
	return false
}

// hasDataHint checks the signals that rescue a mid-length line from the
// prose blacklist.
func (f *ProseFilter) hasDataHint(line string) bool {
	return f.dates.HasDate(line) ||
		monthNameRe.MatchString(line) ||
		listingRe.MatchString(line) ||
		defenseRe.MatchString(line) ||
		vsTokenRe.MatchString(line) ||
		timeHintRe.MatchString(line) ||
		hasResultGlyph(line)
}

func hasResultGlyph(line string) bool {
	for _, g := range resultGlyphs {
		if strings.Contains(line, g) {
			return true
		}
	}
	return false
}
