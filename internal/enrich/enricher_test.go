package enrich

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/observability"
)

type fakeFetcher struct {
	mu           sync.Mutex
	calls        map[string]int
	descriptions map[string]string
	failures     map[string]error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		calls:        make(map[string]int),
		descriptions: make(map[string]string),
		failures:     make(map[string]error),
	}
}

func (f *fakeFetcher) FetchDescription(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	if err, ok := f.failures[key]; ok {
		return "", err
	}
	return f.descriptions[key], nil
}

func (f *fakeFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *mapCache) Set(ctx context.Context, key, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = description
}

func record(day int, ticket string) domain.OutageRecord {
	return domain.OutageRecord{
		Date:      domain.Date{Year: 2025, Month: time.September, Day: day},
		TicketRef: ticket,
	}
}

func newEnricher(f DescriptionFetcher, c Cache) *Enricher {
	return NewEnricher(f, c, zap.NewNop(), observability.NewRunStats(), 4)
}

func TestEnrichAllAttachesDescriptions(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.descriptions["OPS-1"] = "RCA: bad deploy"

	records := []domain.OutageRecord{
		record(8, "https://tickets.example.com/browse/OPS-1"),
		record(9, ""),
	}

	if err := newEnricher(fetcher, nil).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll: %v", err)
	}

	if records[0].EnrichedDescription != "RCA: bad deploy" {
		t.Errorf("record 0 not enriched: %+v", records[0])
	}
	if records[1].EnrichedDescription != "" {
		t.Errorf("record 1 should stay unenriched: %+v", records[1])
	}
}

func TestEnrichAllEmptyTicketRefMakesNoCalls(t *testing.T) {
	fetcher := newFakeFetcher()
	records := []domain.OutageRecord{record(8, ""), record(9, "no key in here")}

	if err := newEnricher(fetcher, nil).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll: %v", err)
	}
	if fetcher.totalCalls() != 0 {
		t.Errorf("fetcher called %d times, want 0", fetcher.totalCalls())
	}
}

func TestEnrichAllFailureLeavesRecordUnchanged(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failures["OPS-1"] = errors.New("boom")
	fetcher.descriptions["OPS-2"] = "RCA: switch port flapped"

	records := []domain.OutageRecord{
		record(8, "https://tickets.example.com/browse/OPS-1"),
		record(9, "https://tickets.example.com/browse/OPS-2"),
	}
	before := records[0]

	if err := newEnricher(fetcher, nil).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll must absorb lookup failures, got %v", err)
	}

	if records[0] != before {
		t.Errorf("failed lookup mutated the record: %+v", records[0])
	}
	if records[1].EnrichedDescription != "RCA: switch port flapped" {
		t.Errorf("independent lookup should still succeed: %+v", records[1])
	}
}

func TestEnrichAllFetchesEachKeyOnce(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.descriptions["OPS-1"] = "shared ticket"

	records := []domain.OutageRecord{
		record(8, "OPS-1"),
		record(9, "OPS-1"),
	}

	if err := newEnricher(fetcher, nil).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll: %v", err)
	}
	if fetcher.calls["OPS-1"] != 1 {
		t.Errorf("OPS-1 fetched %d times, want 1", fetcher.calls["OPS-1"])
	}
	if records[0].EnrichedDescription != "shared ticket" || records[1].EnrichedDescription != "shared ticket" {
		t.Errorf("both records should share the description: %+v", records)
	}
}

func TestEnrichAllUsesCache(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.descriptions["OPS-1"] = "fresh"

	cache := newMapCache()
	cache.Set(context.Background(), "OPS-1", "cached description")

	records := []domain.OutageRecord{record(8, "OPS-1")}
	if err := newEnricher(fetcher, cache).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll: %v", err)
	}

	if fetcher.totalCalls() != 0 {
		t.Errorf("cache hit must avoid the network, got %d calls", fetcher.totalCalls())
	}
	if records[0].EnrichedDescription != "cached description" {
		t.Errorf("EnrichedDescription = %q", records[0].EnrichedDescription)
	}
}

func TestEnrichAllPopulatesCache(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.descriptions["OPS-1"] = "fetched"

	cache := newMapCache()
	records := []domain.OutageRecord{record(8, "OPS-1")}
	if err := newEnricher(fetcher, cache).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll: %v", err)
	}

	if v, ok := cache.Get(context.Background(), "OPS-1"); !ok || v != "fetched" {
		t.Errorf("cache entry = (%q, %v), want the fetched description", v, ok)
	}
}

func TestEnrichAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := newFakeFetcher()
	records := []domain.OutageRecord{record(8, "OPS-1")}

	err := newEnricher(fetcher, nil).EnrichAll(ctx, records)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if records[0].EnrichedDescription != "" {
		t.Errorf("cancelled run must not enrich records")
	}
}

func TestEnrichAllNilFetcherIsNoop(t *testing.T) {
	records := []domain.OutageRecord{record(8, "OPS-1")}
	if err := newEnricher(nil, nil).EnrichAll(context.Background(), records); err != nil {
		t.Fatalf("EnrichAll: %v", err)
	}
	if records[0].EnrichedDescription != "" {
		t.Errorf("disabled enrichment must leave records alone")
	}
}
