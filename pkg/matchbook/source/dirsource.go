package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DirSource serves markdown files from a local directory tree.
type DirSource struct {
	root    string
	pattern string
}

// NewDirSource walks root for files matching pattern (doublestar
// syntax, default "**/*.md").
func NewDirSource(root, pattern string) *DirSource {
	if pattern == "" {
		pattern = "**/*.md"
	}
	return &DirSource{root: root, pattern: pattern}
}

// ListFiles returns the matching files sorted by base name so runs
// are deterministic regardless of directory order.
func (d *DirSource) ListFiles(ctx context.Context) ([]File, error) {
	matches, err := doublestar.Glob(os.DirFS(d.root), d.pattern)
	if err != nil {
		return nil, fmt.Errorf("source: glob %s in %s: %w", d.pattern, d.root, err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return filepath.Base(matches[i]) < filepath.Base(matches[j])
	})
	files := make([]File, 0, len(matches))
	for _, m := range matches {
		files = append(files, &dirFile{fsys: os.DirFS(d.root), path: m})
	}
	return files, nil
}

type dirFile struct {
	fsys fs.FS
	path string
}

func (f *dirFile) Name() string { return filepath.Base(f.path) }

func (f *dirFile) Text(ctx context.Context) (string, error) {
	b, err := fs.ReadFile(f.fsys, f.path)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", f.path, err)
	}
	return string(b), nil
}
