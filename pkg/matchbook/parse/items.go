// Package parse turns raw results files into typed content items,
// separating wrestling data from narrative prose.
package parse

// Kind classifies one logical line of source text.
type Kind int

const (
	KindContent Kind = iota
	KindHeader
	KindSeparator
)

// Separator is the canonical event divider token.
const Separator = "——"

// ContentItem is one classified line. Header items carry the text with
// leading '#' stripped and the heading level; Separator items carry the
// canonical separator token.
type ContentItem struct {
	Kind  Kind
	Text  string
	Level int
}

// ParsedFile is the result of parsing one source document.
type ParsedFile struct {
	SeriesName string
	SourceName string
	Items      []ContentItem
}
