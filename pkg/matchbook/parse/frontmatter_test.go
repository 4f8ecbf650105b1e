package parse

import (
	"strings"
	"testing"
)

func TestFrontmatterTitle(t *testing.T) {
	raw := "---\ntitle: \"El Numero Uno Special 2001\"\ndate: 2015-08-19\n---\n\n4/26/2001 Gifu Industrial Hall\n"

	series, body, err := ExtractFrontmatter(raw, "elnumero01.md")
	if err != nil {
		t.Fatalf("ExtractFrontmatter: %v", err)
	}
	if series != "El Numero Uno Special 2001" {
		t.Errorf("series = %q", series)
	}
	if strings.Contains(body, "---") || strings.Contains(body, "2015-08-19") {
		t.Errorf("frontmatter leaked into body: %q", body)
	}
	if !strings.Contains(body, "Gifu Industrial Hall") {
		t.Errorf("body lost content: %q", body)
	}
}

func TestFrontmatterUnquotedTitle(t *testing.T) {
	raw := "---\ntitle: Primera Temporada\n---\nbody line\n"

	series, _, err := ExtractFrontmatter(raw, "primera01.md")
	if err != nil {
		t.Fatalf("ExtractFrontmatter: %v", err)
	}
	if series != "Primera Temporada" {
		t.Errorf("series = %q", series)
	}
}

func TestNoFrontmatterFallsBackToFilename(t *testing.T) {
	series, body, err := ExtractFrontmatter("just content\n", "final_gate-07.md")
	if err != nil {
		t.Fatalf("ExtractFrontmatter: %v", err)
	}
	if series != "Final Gate 07" {
		t.Errorf("series = %q, want Final Gate 07", series)
	}
	if body != "just content\n" {
		t.Errorf("body = %q", body)
	}
}

func TestUnclosedFrontmatterTreatedAsBody(t *testing.T) {
	raw := "---\ntitle: never closed\ncontent continues\n"

	series, body, err := ExtractFrontmatter(raw, "verano01.md")
	if err != nil {
		t.Fatalf("ExtractFrontmatter: %v", err)
	}
	if series != "Verano01" {
		t.Errorf("series = %q", series)
	}
	if body != raw {
		t.Errorf("body should be the raw text, got %q", body)
	}
}

func TestMalformedFrontmatter(t *testing.T) {
	raw := "---\ntitle: [unterminated\n---\nbody\n"

	if _, _, err := ExtractFrontmatter(raw, "pelea01.md"); err == nil {
		t.Fatal("expected error for malformed frontmatter")
	}
}

func TestSeriesFromFilename(t *testing.T) {
	cases := map[string]string{
		"el_numero-uno.md": "El Numero Uno",
		"NAVIDAD01.md":     "Navidad01",
		"muybien01.md":     "Muybien01",
	}
	for in, want := range cases {
		if got := SeriesFromFilename(in); got != want {
			t.Errorf("SeriesFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
