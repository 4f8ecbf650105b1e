package docsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Markdown writes each year to <dir>/<year>_season.md. Events within
// a series are divided by the canonical separator; a new series opens
// with its own second-level header.
type Markdown struct {
	dir   string
	runID string

	f          *os.File
	inSeries   bool
	eventCount int
}

func NewMarkdown(dir, runID string) *Markdown {
	return &Markdown{dir: dir, runID: runID}
}

func (m *Markdown) BeginYear(year int) error {
	if m.f != nil {
		return fmt.Errorf("docsink: year %d begun before previous finalize", year)
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("docsink: create %s: %w", m.dir, err)
	}
	path := filepath.Join(m.dir, fmt.Sprintf("%d_season.md", year))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("docsink: create %s: %w", path, err)
	}
	m.f = f
	m.inSeries = false
	m.eventCount = 0
	return m.write(fmt.Sprintf("# %d Season\n", year))
}

func (m *Markdown) AddSeriesHeader(name string) error {
	if m.f == nil {
		return fmt.Errorf("docsink: series header before BeginYear")
	}
	m.inSeries = true
	m.eventCount = 0
	return m.write(fmt.Sprintf("\n## %s\n", name))
}

func (m *Markdown) AddEventBlock(text string) error {
	if m.f == nil {
		return fmt.Errorf("docsink: event block before BeginYear")
	}
	var b strings.Builder
	if m.eventCount > 0 {
		b.WriteString("\n——\n")
	}
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteByte('\n')
	m.eventCount++
	return m.write(b.String())
}

func (m *Markdown) Finalize(processed, total int) error {
	if m.f == nil {
		return fmt.Errorf("docsink: finalize before BeginYear")
	}
	footer := fmt.Sprintf("\n---\n_%d of %d events processed (run %s)_\n", processed, total, m.runID)
	if err := m.write(footer); err != nil {
		m.f.Close()
		m.f = nil
		return err
	}
	err := m.f.Close()
	m.f = nil
	if err != nil {
		return fmt.Errorf("docsink: close: %w", err)
	}
	return nil
}

func (m *Markdown) write(s string) error {
	if _, err := m.f.WriteString(s); err != nil {
		return fmt.Errorf("docsink: write: %w", err)
	}
	return nil
}
