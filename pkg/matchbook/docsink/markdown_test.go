package docsink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarkdownDocument(t *testing.T) {
	dir := t.TempDir()
	m := NewMarkdown(dir, "01ARZ3NDEKTSV4RRFFQ69G5FAV")

	if err := m.BeginYear(2001); err != nil {
		t.Fatalf("BeginYear: %v", err)
	}
	if err := m.AddSeriesHeader("El Numero Uno Special 2001"); err != nil {
		t.Fatalf("AddSeriesHeader: %v", err)
	}
	if err := m.AddEventBlock("4/26/2001 Gifu Industrial Hall\n① Singles Match"); err != nil {
		t.Fatalf("AddEventBlock: %v", err)
	}
	if err := m.AddEventBlock("4/27/2001 Nagoya Congress Center\n① Tag Team Match"); err != nil {
		t.Fatalf("AddEventBlock: %v", err)
	}
	if err := m.AddSeriesHeader("Rey de Parejas 2001"); err != nil {
		t.Fatalf("AddSeriesHeader: %v", err)
	}
	if err := m.AddEventBlock("5/2/2001 Hakata Star Lane\n① Singles Match"); err != nil {
		t.Fatalf("AddEventBlock: %v", err)
	}
	if err := m.Finalize(3, 3); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "2001_season.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(b)

	if !strings.HasPrefix(doc, "# 2001 Season\n") {
		t.Errorf("missing year header:\n%s", doc)
	}
	if !strings.Contains(doc, "## El Numero Uno Special 2001") {
		t.Errorf("missing series header:\n%s", doc)
	}
	if strings.Count(doc, "\n——\n") != 1 {
		t.Errorf("want exactly one separator between same-series events:\n%s", doc)
	}
	if !strings.Contains(doc, "_3 of 3 events processed (run 01ARZ3NDEKTSV4RRFFQ69G5FAV)_") {
		t.Errorf("missing footer:\n%s", doc)
	}
	headerIdx := strings.Index(doc, "## Rey de Parejas 2001")
	eventIdx := strings.Index(doc, "5/2/2001")
	if headerIdx < 0 || eventIdx < headerIdx {
		t.Errorf("series header must precede its events:\n%s", doc)
	}
}

func TestSinkCallOrderEnforced(t *testing.T) {
	m := NewMarkdown(t.TempDir(), "run")
	if err := m.AddEventBlock("text"); err == nil {
		t.Error("event block before BeginYear must fail")
	}
	if err := m.Finalize(0, 0); err == nil {
		t.Error("finalize before BeginYear must fail")
	}
}
