package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/catalog"
	"github.com/mack42/weekly-uptime-status-report/internal/config"
	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/enrich"
	"github.com/mack42/weekly-uptime-status-report/internal/format"
	"github.com/mack42/weekly-uptime-status-report/internal/ingest"
	"github.com/mack42/weekly-uptime-status-report/internal/jira"
	"github.com/mack42/weekly-uptime-status-report/internal/llm"
	"github.com/mack42/weekly-uptime-status-report/internal/observability"
	"github.com/mack42/weekly-uptime-status-report/internal/persistence"
	"github.com/mack42/weekly-uptime-status-report/internal/report"
	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	logger = observability.NewRunLogger(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats := observability.NewRunStats()

	text, err := run(ctx, cfg, logger, stats)
	if err != nil {
		de := util.ToDomainError(err)
		logger.Error("run failed", zap.String("code", de.Code), zap.Error(err))
		os.Exit(1)
	}

	stats.Log(logger)
	fmt.Print(text)
}

// run executes the whole pipeline once and returns the rendered report.
// Enrichment and formatting failures are absorbed upstream; the only
// errors seen here are an unreadable source or a cancelled run, and
// neither emits a partial report.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stats *observability.RunStats) (string, error) {
	window := report.PreviousWeek(domain.DateOf(time.Now()))
	logger.Info("generating report",
		zap.Int("week", window.WeekNumber()),
		zap.String("range", window.DateRange()),
	)

	reader := ingest.NewReader(logger, stats)
	records, err := reader.ReadFile(cfg.Source.CSVPath)
	if err != nil {
		return "", err
	}

	if cfg.Catalog.Path != "" {
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Warn("service catalog unavailable", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		} else {
			cat.Apply(records)
		}
	}

	filtered := report.Filter(records, window)
	report.SortByDate(filtered)
	stats.Add(observability.StatRecordsInWindow, int64(len(filtered)))
	logger.Info("records in window", zap.Int("count", len(filtered)))

	var cache enrich.Cache
	if tc := persistence.NewTicketCache(cfg.Redis, logger); tc != nil {
		defer tc.Close()
		cache = tc
	}

	var fetcher enrich.DescriptionFetcher
	if cfg.Jira.Enabled() {
		fetcher = jira.NewClient(cfg.Jira, logger)
	} else {
		logger.Warn("ticketing credentials not set, skipping enrichment")
	}

	enricher := enrich.NewEnricher(fetcher, cache, logger, stats, cfg.Jira.Concurrency)
	if err := enricher.EnrichAll(ctx, filtered); err != nil {
		return "", err
	}

	var completer format.Completer
	if cfg.App.UseAI {
		completer = llm.NewClient(cfg.LLM, logger)
	} else {
		logger.Info("AI formatting disabled")
	}

	formatter := format.NewFormatter(completer, logger)
	outcome := formatter.Format(ctx, window, filtered)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	logger.Info("report formatted", zap.String("mode", string(outcome.Mode)))

	return report.Assemble(window, outcome.Body, outcome.Mode), nil
}
