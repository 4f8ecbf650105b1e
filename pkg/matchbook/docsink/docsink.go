// Package docsink receives the formatted output of a year run.
package docsink

// Sink assembles one year's document from an ordered stream of
// series headers and event blocks.
type Sink interface {
	BeginYear(year int) error
	AddSeriesHeader(name string) error
	AddEventBlock(text string) error
	Finalize(processed, total int) error
}
