package parse

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter is the slice of the metadata block we care about. The
// date field is deliberately absent: it is an upload timestamp, not a
// show date, and must not influence anything downstream.
type frontmatter struct {
	Title string `yaml:"title"`
}

// ExtractFrontmatter splits raw file text into a series name and the
// body. A metadata block is a leading line of exactly "---" closed by a
// second "---" line. When no block or no title is present the series
// name is derived from the filename.
func ExtractFrontmatter(raw, filename string) (seriesName, body string, err error) {
	body = raw
	lines := strings.Split(raw, "\n")

	if len(lines) > 0 && strings.TrimRight(lines[0], "\r") == "---" {
		for i := 1; i < len(lines); i++ {
			if strings.TrimRight(lines[i], "\r") != "---" {
				continue
			}
			block := strings.Join(lines[1:i], "\n")
			var fm frontmatter
			if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
				return "", "", fmt.Errorf("parse: malformed frontmatter in %s: %w", filename, err)
			}
			seriesName = strings.TrimSpace(fm.Title)
			body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			break
		}
	}

	if seriesName == "" {
		seriesName = SeriesFromFilename(filename)
	}
	return seriesName, body, nil
}

// SeriesFromFilename derives a display name from a filename: extension
// stripped, underscores and hyphens become spaces, words title-cased.
func SeriesFromFilename(filename string) string {
	stem := filename
	if i := strings.LastIndex(stem, "."); i > 0 {
		stem = stem[:i]
	}
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	words := strings.Fields(stem)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}
