// Package pipeline runs one year's files through parsing,
// segmentation, ordering, and formatting.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ringarchive/matchbook/pkg/matchbook/docsink"
	"github.com/ringarchive/matchbook/pkg/matchbook/event"
	"github.com/ringarchive/matchbook/pkg/matchbook/format"
	"github.com/ringarchive/matchbook/pkg/matchbook/parse"
	"github.com/ringarchive/matchbook/pkg/matchbook/runlog"
	"github.com/ringarchive/matchbook/pkg/matchbook/source"
)

// Formatter is the external text formatter. Any error from Format
// silently routes the event through the deterministic fallback.
type Formatter interface {
	Format(ctx context.Context, eventText, seriesName string) (string, error)
}

// Failure records one skipped unit of work.
type Failure struct {
	Name string
	Err  error
}

// Report aggregates what happened to a year. Events that went through
// the fallback formatter count as processed.
type Report struct {
	Year         int
	Files        int
	Events       int
	Processed    int
	FellBack     int
	FileFailures []Failure
	EventFailures []Failure
}

// YearPipeline wires the per-year stages together. A nil Formatter
// sends every event straight to the fallback.
type YearPipeline struct {
	parser    *parse.Parser
	segmenter *event.Segmenter
	fallback  *format.FallbackFormatter
	formatter Formatter
	log       zerolog.Logger
	runlog    runlog.Sink
}

func New(parser *parse.Parser, seg *event.Segmenter, fb *format.FallbackFormatter, fm Formatter, log zerolog.Logger, rl runlog.Sink) *YearPipeline {
	if rl == nil {
		rl = runlog.Nop{}
	}
	return &YearPipeline{parser: parser, segmenter: seg, fallback: fb, formatter: fm, log: log, runlog: rl}
}

// Run processes the year's files into sink. Per-file and per-event
// failures are recorded in the report and do not abort the run; sink
// setup and finalize errors do.
func (p *YearPipeline) Run(ctx context.Context, year int, files []source.File, sink docsink.Sink) (Report, error) {
	rep := Report{Year: year, Files: len(files)}

	var events []event.Event
	for _, f := range files {
		evs, err := p.parseOne(ctx, f)
		if err != nil {
			rep.FileFailures = append(rep.FileFailures, Failure{Name: f.Name(), Err: err})
			p.log.Warn().Str("file", f.Name()).Err(err).Msg("file skipped")
			p.runlog.Append(fmt.Sprintf("skipped %s: %v", f.Name(), err))
			continue
		}
		events = append(events, evs...)
	}
	rep.Events = len(events)

	// dated events ascending, undated after all dated ones, discovery
	// order preserved among equals
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].HasDate() {
			return false
		}
		if !events[j].HasDate() {
			return true
		}
		return events[i].Date.Before(events[j].Date)
	})

	if err := sink.BeginYear(year); err != nil {
		return rep, fmt.Errorf("pipeline: begin year %d: %w", year, err)
	}

	prevSeries := ""
	for i := range events {
		ev := &events[i]
		if ev.SeriesName != prevSeries {
			if err := sink.AddSeriesHeader(ev.SeriesName); err != nil {
				return rep, fmt.Errorf("pipeline: series header %q: %w", ev.SeriesName, err)
			}
			prevSeries = ev.SeriesName
		}
		text := p.formatOne(ctx, ev, &rep)
		if err := sink.AddEventBlock(text); err != nil {
			rep.EventFailures = append(rep.EventFailures, Failure{Name: eventLabel(ev), Err: err})
			p.log.Warn().Str("event", eventLabel(ev)).Err(err).Msg("event skipped")
			p.runlog.Append(fmt.Sprintf("event skipped %s: %v", eventLabel(ev), err))
			continue
		}
		rep.Processed++
	}

	if err := sink.Finalize(rep.Processed, rep.Events); err != nil {
		return rep, fmt.Errorf("pipeline: finalize year %d: %w", year, err)
	}
	p.runlog.Append(fmt.Sprintf("year %d: %d/%d events processed", year, rep.Processed, rep.Events))
	return rep, nil
}

func (p *YearPipeline) parseOne(ctx context.Context, f source.File) ([]event.Event, error) {
	raw, err := f.Text(ctx)
	if err != nil {
		return nil, err
	}
	pf, err := p.parser.ParseFile(f.Name(), raw)
	if err != nil {
		return nil, err
	}
	return p.segmenter.Split(pf), nil
}

// formatOne tries the external formatter first and substitutes the
// fallback output on any error. The substitution is silent to the
// caller and shows up only in the report and logs.
func (p *YearPipeline) formatOne(ctx context.Context, ev *event.Event, rep *Report) string {
	if p.formatter != nil {
		out, err := p.formatter.Format(ctx, ev.Text(), ev.SeriesName)
		if err == nil {
			return out
		}
		p.log.Warn().Str("event", eventLabel(ev)).Err(err).Msg("formatter failed, using fallback")
		p.runlog.Append(fmt.Sprintf("fallback for %s: %v", eventLabel(ev), err))
	}
	rep.FellBack++
	return p.fallback.Format(ev)
}

func eventLabel(ev *event.Event) string {
	if ev.HasDate() {
		return fmt.Sprintf("%s %s", ev.SourceFile, ev.Date.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s (no date)", ev.SourceFile)
}
