// Package source enumerates raw result files for the pipeline.
package source

import "context"

// File is one input document. Text re-reads the backing store on each
// call; callers read once and keep the string.
type File interface {
	Name() string
	Text(ctx context.Context) (string, error)
}

// Source lists the files available for a run.
type Source interface {
	ListFiles(ctx context.Context) ([]File, error)
}
