// Package enrich attaches ticketing system detail to outage records.
// Enrichment is advisory: its absence never blocks report generation.
package enrich

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/jira"
	"github.com/mack42/weekly-uptime-status-report/internal/observability"
	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

// DescriptionFetcher is the ticketing system collaborator.
type DescriptionFetcher interface {
	FetchDescription(ctx context.Context, key string) (string, error)
}

// Cache stores fetched descriptions across runs. May be absent.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, description string)
}

// Enricher performs best-effort ticket lookups for a batch of records.
type Enricher struct {
	fetcher     DescriptionFetcher
	cache       Cache
	logger      *zap.Logger
	stats       *observability.RunStats
	concurrency int
}

// NewEnricher constructs the enricher. A nil fetcher disables enrichment
// entirely; a nil cache means every key is fetched fresh.
func NewEnricher(fetcher DescriptionFetcher, cache Cache, logger *zap.Logger, stats *observability.RunStats, concurrency int) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		fetcher:     fetcher,
		cache:       cache,
		logger:      logger,
		stats:       stats,
		concurrency: concurrency,
	}
}

// EnrichAll attaches descriptions to every record whose ticket reference
// contains an issue key. Lookups are independent: one record's failure
// leaves the others untouched, and a failed or keyless record simply stays
// unenriched. Each distinct issue key is fetched once per run, with
// lookups bounded by the configured concurrency. The only error returned
// is context cancellation.
func (e *Enricher) EnrichAll(ctx context.Context, records []domain.OutageRecord) error {
	if e.fetcher == nil {
		return nil
	}

	byKey := make(map[string][]int)
	for i := range records {
		if records[i].TicketRef == "" {
			continue
		}
		key, ok := jira.ExtractKey(records[i].TicketRef)
		if !ok {
			e.logger.Debug("no issue key in ticket reference", zap.String("ticket", records[i].TicketRef))
			continue
		}
		byKey[key] = append(byKey[key], i)
	}
	if len(byKey) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sem := make(chan struct{}, e.concurrency)
	var wg sync.WaitGroup
	for key, indexes := range byKey {
		wg.Add(1)
		go func(key string, indexes []int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			description := e.lookup(ctx, key)
			if description == "" {
				return
			}
			// Each record index belongs to exactly one key, so these
			// writes never race.
			for _, i := range indexes {
				records[i].EnrichedDescription = description
				e.stats.Inc(observability.StatEnriched)
			}
		}(key, indexes)
	}
	wg.Wait()

	return ctx.Err()
}

func (e *Enricher) lookup(ctx context.Context, key string) string {
	if e.cache != nil {
		if description, ok := e.cache.Get(ctx, key); ok {
			e.stats.Inc(observability.StatCacheHits)
			return description
		}
	}

	e.stats.Inc(observability.StatLookups)
	description, err := e.fetcher.FetchDescription(ctx, key)
	if err != nil {
		e.logger.Warn("record stays unenriched", zap.Error(util.NewEnrichmentError(key, err)))
		e.stats.Inc(observability.StatLookupFailures)
		return ""
	}

	if description != "" && e.cache != nil {
		e.cache.Set(ctx, key, description)
	}
	return description
}
