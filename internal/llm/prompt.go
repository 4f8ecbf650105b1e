package llm

import (
	"fmt"
	"strings"
)

const formatRules = `You reformat professional wrestling event results into a strict notation.

Rules:
- Number each match with circled digits in card order: ① ② ③ ④ ⑤ ⑥ ⑦ ⑧ ⑨ ⑩.
- Mark the winning side with ⭕ and the losing side with ❌ directly after the name.
- Mark both sides of a no contest, double count out, or DQ finish with ▲.
- Mark both sides of a time limit draw with △.
- Put each wrestler or team on its own line, with a lone "vs" line between the sides.
- Keep the match time and finish in parentheses on its own line, e.g. (16:45 Ultra Hurricanrana).
- Keep date, venue, and attendance lines first, exactly as given.
- Prefix championship defense notes with ⭐︎.
- Output plain text only. Do not add commentary, markdown, or lines not derived from the input.`

func buildPrompt(eventText, seriesName string) string {
	var b strings.Builder
	b.WriteString(formatRules)
	b.WriteString("\n\n")
	if seriesName != "" {
		fmt.Fprintf(&b, "Series: %s\n\n", seriesName)
	}
	b.WriteString("Event results to reformat:\n")
	b.WriteString(eventText)
	return b.String()
}
