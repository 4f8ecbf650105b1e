package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/ringarchive/matchbook/internal/llm"
	"github.com/ringarchive/matchbook/pkg/matchbook"
	"github.com/ringarchive/matchbook/pkg/matchbook/config"
	"github.com/ringarchive/matchbook/pkg/matchbook/docsink"
	"github.com/ringarchive/matchbook/pkg/matchbook/pipeline"
	"github.com/ringarchive/matchbook/pkg/matchbook/runlog"
	"github.com/ringarchive/matchbook/pkg/matchbook/runlog/sqlitelog"
	"github.com/ringarchive/matchbook/pkg/matchbook/source"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		sourceFlag = flag.String("source", "", "Input directory or index URL (overrides config)")
		outDir     = flag.String("out", "", "Output directory (overrides config)")
		year       = flag.Int("year", 0, "Process only this year (0 = all)")
		dryRun     = flag.Bool("dry-run", false, "Skip the AI formatter, deterministic output only")
		schedule   = flag.String("cron", "", "Cron expression for repeated runs (optional)")
		logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	if *sourceFlag != "" {
		if strings.HasPrefix(*sourceFlag, "http://") || strings.HasPrefix(*sourceFlag, "https://") {
			cfg.Source.IndexURL = *sourceFlag
			cfg.Source.Dir = ""
		} else {
			cfg.Source.Dir = *sourceFlag
			cfg.Source.IndexURL = ""
		}
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *schedule != "" {
		runOnSchedule(ctx, log, cfg, *schedule, *year, *dryRun)
		return
	}
	if err := runOnce(ctx, log, cfg, *year, *dryRun); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runOnSchedule(ctx context.Context, log zerolog.Logger, cfg config.Config, schedule string, year int, dryRun bool) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := runOnce(ctx, log, cfg, year, dryRun); err != nil {
			log.Error().Err(err).Msg("scheduled run failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Str("cron", schedule).Msg("bad cron expression")
	}
	log.Info().Str("cron", schedule).Msg("scheduler started")
	c.Start()
	<-ctx.Done()
	cronCtx := c.Stop()
	<-cronCtx.Done()
}

func runOnce(ctx context.Context, log zerolog.Logger, cfg config.Config, year int, dryRun bool) error {
	runID := ulid.Make().String()
	log = log.With().Str("run", runID).Logger()

	var rl runlog.Sink = runlog.NewWriterSink(os.Stderr)
	if cfg.RunLog.SQLitePath != "" {
		sl, err := sqlitelog.Open(ctx, cfg.RunLog.SQLitePath, runID)
		if err != nil {
			return err
		}
		defer sl.Close()
		rl = runlog.Tee{rl, sl}
	}

	var src source.Source
	if cfg.Source.IndexURL != "" {
		src = source.NewWebDirSource(cfg.Source.IndexURL, &http.Client{Timeout: 30 * time.Second})
	} else {
		src = source.NewDirSource(cfg.Source.Dir, cfg.Source.Pattern)
	}

	var formatter pipeline.Formatter
	if !dryRun && cfg.LLM.APIKey != "" {
		formatter = &llm.Client{
			Endpoint:        cfg.LLM.Endpoint,
			APIKey:          cfg.LLM.APIKey,
			Model:           cfg.LLM.Model,
			Temperature:     cfg.LLM.Temperature,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		}
	}

	p := matchbook.New(matchbook.Options{
		Source:    src,
		Sink:      docsink.NewMarkdown(cfg.Output.Dir, runID),
		Formatter: formatter,
		Filter:    cfg.Filter,
		Years:     cfg.Years,
		Year:      year,
		Log:       log,
		RunLog:    rl,
	})

	sum, err := p.Run(ctx)
	if err != nil {
		return err
	}
	for _, rep := range sum.Reports {
		log.Info().
			Int("year", rep.Year).
			Int("files", rep.Files).
			Int("events", rep.Events).
			Int("processed", rep.Processed).
			Int("fellBack", rep.FellBack).
			Int("fileFailures", len(rep.FileFailures)).
			Msg("season written")
	}
	if len(sum.SkippedFiles) > 0 {
		log.Warn().Strs("files", sum.SkippedFiles).Msg("files without a resolvable year")
	}
	return nil
}
