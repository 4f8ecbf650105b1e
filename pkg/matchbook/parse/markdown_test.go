package parse

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestParser() *Parser {
	return NewParser(newTestFilter(), zerolog.Nop())
}

func TestParseHeaders(t *testing.T) {
	p := newTestParser()

	items := p.Parse("# Title\n\n## El Numero Uno Special 2001\n")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Kind != KindHeader || items[0].Level != 1 || items[0].Text != "Title" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Kind != KindHeader || items[1].Level != 2 || items[1].Text != "El Numero Uno Special 2001" {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestParseSeparators(t *testing.T) {
	p := newTestParser()

	items := p.Parse("line one\n——\n---\nsome —— embedded\n")
	var seps int
	for _, it := range items {
		if it.Kind == KindSeparator {
			seps++
			if it.Text != Separator {
				t.Errorf("separator text = %q", it.Text)
			}
		}
	}
	if seps != 3 {
		t.Fatalf("got %d separators, want 3", seps)
	}
}

func TestParseDropsBlankAndProse(t *testing.T) {
	p := newTestParser()

	body := "4/26/2001 Gifu Industrial Hall 1050 Attendance\n\n" +
		"Mochizuki talked about his plans for the future and thanked the crowd for their support through a long and winded promo about everything\n" +
		"① Singles Match\n"
	items := p.Parse(body)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (prose and blanks dropped): %+v", len(items), items)
	}
	for _, it := range items {
		if it.Kind != KindContent {
			t.Errorf("unexpected kind for %+v", it)
		}
	}
}

func TestParseFilePreservesGlyphs(t *testing.T) {
	p := newTestParser()

	raw := "---\ntitle: Final Gate 2007\n---\nDragon Kid⭕\nvs\nYasushi Kanda❌\n(16:45 Ultra Hurricanrana)\n"
	pf, err := p.ParseFile("finalgate07.md", raw)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if pf.SeriesName != "Final Gate 2007" {
		t.Errorf("series = %q", pf.SeriesName)
	}
	if pf.SourceName != "finalgate07.md" {
		t.Errorf("source = %q", pf.SourceName)
	}
	if len(pf.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(pf.Items))
	}
	if pf.Items[0].Text != "Dragon Kid⭕" {
		t.Errorf("glyphs must pass through unmodified, got %q", pf.Items[0].Text)
	}
}

func TestParseFileEmpty(t *testing.T) {
	p := newTestParser()

	pf, err := p.ParseFile("empty.md", "")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(pf.Items) != 0 {
		t.Fatalf("empty file should yield no items, got %d", len(pf.Items))
	}
}
