// Package format renders events into the canonical symbolic notation.
package format

import (
	"regexp"
	"strings"
)

var matchPhraseRe = regexp.MustCompile(`(?i)(singles|tag team|man tag|battle royal|championship|elimination|hardcore|street fight|ladder|cage|steel cage) match`)

// bareResultTokens are outcomes that sometimes appear in place of a
// match-type line. They default to a singles match.
var bareResultTokens = map[string]bool{
	"no contest":      true,
	"time limit draw": true,
	"double count out": true,
	"disqualification": true,
	"draw":            true,
}

// ClassifyMatchType returns a canonical match-type label for a
// candidate header line. A supplied participant count takes over only
// when the text itself carries no recognized phrase; pass 0 when the
// count is unknown.
func ClassifyMatchType(text string, participants int) string {
	trimmed := strings.TrimSpace(text)
	if matchPhraseRe.MatchString(trimmed) {
		return trimmed
	}
	if participants > 0 {
		switch {
		case participants == 2:
			return "Singles Match"
		case participants == 4:
			return "Tag Team Match"
		case participants == 6:
			return "6-Man Tag Match"
		case participants == 8:
			return "8-Man Tag Match"
		case participants > 8:
			return "Battle Royal"
		}
	}
	if bareResultTokens[strings.ToLower(trimmed)] {
		return "Singles Match"
	}
	if strings.Contains(strings.ToLower(trimmed), "match") {
		return trimmed
	}
	return "Singles Match"
}
