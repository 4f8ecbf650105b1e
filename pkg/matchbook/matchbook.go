// Package matchbook turns folders of loosely written wrestling
// results into chronologically ordered season documents.
package matchbook

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ringarchive/matchbook/pkg/matchbook/dates"
	"github.com/ringarchive/matchbook/pkg/matchbook/docsink"
	"github.com/ringarchive/matchbook/pkg/matchbook/event"
	"github.com/ringarchive/matchbook/pkg/matchbook/format"
	"github.com/ringarchive/matchbook/pkg/matchbook/parse"
	"github.com/ringarchive/matchbook/pkg/matchbook/pipeline"
	"github.com/ringarchive/matchbook/pkg/matchbook/runlog"
	"github.com/ringarchive/matchbook/pkg/matchbook/source"
	"github.com/ringarchive/matchbook/pkg/matchbook/years"
)

// Options configures a Processor. Source and Sink are required.
type Options struct {
	Source    source.Source
	Sink      docsink.Sink
	Formatter pipeline.Formatter

	Filter parse.FilterConfig
	Years  years.Config
	Bounds dates.Bounds

	// Year restricts the run to one season; zero processes every
	// year found.
	Year int

	Log    zerolog.Logger
	RunLog runlog.Sink
}

// Summary reports one whole run.
type Summary struct {
	Reports []pipeline.Report
	// SkippedFiles are files whose year could not be resolved.
	SkippedFiles []string
}

// Processor is the top-level facade.
type Processor struct {
	src      source.Source
	sink     docsink.Sink
	resolver *years.Resolver
	pipe     *pipeline.YearPipeline
	year     int
	log      zerolog.Logger
	runlog   runlog.Sink
}

// New wires a Processor from options, filling zero-valued configs
// with their defaults.
func New(opts Options) *Processor {
	if opts.Filter == (parse.FilterConfig{}) {
		opts.Filter = parse.DefaultFilterConfig()
	}
	if opts.Years.Min == 0 && opts.Years.Max == 0 {
		opts.Years = years.DefaultConfig()
	}
	if opts.RunLog == nil {
		opts.RunLog = runlog.Nop{}
	}
	dp := dates.NewParser(opts.Bounds)
	parser := parse.NewParser(parse.NewProseFilter(opts.Filter, dp), opts.Log)
	pipe := pipeline.New(
		parser,
		event.NewSegmenter(dp),
		format.NewFallbackFormatter(dp),
		opts.Formatter,
		opts.Log,
		opts.RunLog,
	)
	return &Processor{
		src:      opts.Source,
		sink:     opts.Sink,
		resolver: years.NewResolver(opts.Years),
		pipe:     pipe,
		year:     opts.Year,
		log:      opts.Log,
		runlog:   opts.RunLog,
	}
}

// Run lists the source, buckets files by resolved year, and processes
// each year in ascending order. A listing failure aborts the run;
// everything downstream degrades per file or per event.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	files, err := p.src.ListFiles(ctx)
	if err != nil {
		return sum, fmt.Errorf("matchbook: list files: %w", err)
	}
	p.runlog.Append(fmt.Sprintf("run started: %d files", len(files)))

	byYear := map[int][]source.File{}
	for _, f := range files {
		year, ok := p.resolver.Resolve(f.Name())
		if !ok {
			sum.SkippedFiles = append(sum.SkippedFiles, f.Name())
			p.log.Warn().Str("file", f.Name()).Msg("no year in filename, skipping")
			p.runlog.Append(fmt.Sprintf("no year for %s", f.Name()))
			continue
		}
		if p.year != 0 && year != p.year {
			continue
		}
		byYear[year] = append(byYear[year], f)
	}

	yearList := make([]int, 0, len(byYear))
	for y := range byYear {
		yearList = append(yearList, y)
	}
	sort.Ints(yearList)

	for _, y := range yearList {
		rep, err := p.pipe.Run(ctx, y, byYear[y], p.sink)
		if err != nil {
			return sum, fmt.Errorf("matchbook: year %d: %w", y, err)
		}
		sum.Reports = append(sum.Reports, rep)
		p.log.Info().
			Int("year", y).
			Int("processed", rep.Processed).
			Int("events", rep.Events).
			Int("fellBack", rep.FellBack).
			Msg("year complete")
	}
	p.runlog.Append(fmt.Sprintf("run finished: %d years", len(yearList)))
	return sum, nil
}
