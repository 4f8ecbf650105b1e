// Package runlog provides the append-only run log the pipeline
// narrates into. Sinks never return errors; a sink that cannot write
// swallows the failure so logging can never break a run.
package runlog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Sink accepts one log line at a time.
type Sink interface {
	Append(message string)
}

// Nop discards every message.
type Nop struct{}

func (Nop) Append(string) {}

// WriterSink timestamps each message and writes it to w. Write errors
// are dropped.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w, now: time.Now}
}

func (s *WriterSink) Append(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s\n", s.now().UTC().Format(time.RFC3339), message)
}

// Tee fans one message out to several sinks.
type Tee []Sink

func (t Tee) Append(message string) {
	for _, s := range t {
		s.Append(message)
	}
}
