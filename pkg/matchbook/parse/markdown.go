package parse

import (
	"strings"

	"github.com/rs/zerolog"
)

// Parser tokenizes a results document line by line into content items,
// running kept lines through the prose filter.
type Parser struct {
	filter *ProseFilter
	log    zerolog.Logger
}

// NewParser creates a markdown parser. The logger may be zerolog.Nop().
func NewParser(filter *ProseFilter, log zerolog.Logger) *Parser {
	return &Parser{filter: filter, log: log}
}

// ParseFile extracts the frontmatter and parses the body of one file.
// An empty file is not an error; it yields a ParsedFile with no items.
func (p *Parser) ParseFile(name, raw string) (ParsedFile, error) {
	series, body, err := ExtractFrontmatter(raw, name)
	if err != nil {
		return ParsedFile{}, err
	}
	return ParsedFile{
		SeriesName: series,
		SourceName: name,
		Items:      p.Parse(body),
	}, nil
}

// Parse tokenizes body text into content items. Blank lines are
// dropped, '#' lines become headers, separator lines become separator
// items, and everything else passes through the prose filter.
func (p *Parser) Parse(body string) []ContentItem {
	var items []ContentItem

	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			items = append(items, ContentItem{
				Kind:  KindHeader,
				Text:  strings.TrimSpace(line[level:]),
				Level: level,
			})

		case line == Separator || line == "---" || strings.Contains(line, Separator):
			items = append(items, ContentItem{Kind: KindSeparator, Text: Separator})

		case p.filter.Keep(line):
			items = append(items, ContentItem{Kind: KindContent, Text: line})

		default:
			p.log.Debug().Str("line", truncate(line, 60)).Msg("filtered prose")
		}
	}

	return items
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
