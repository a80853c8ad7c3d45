// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package dataset

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/storeboard/internal/cache"
	"github.com/tomtom215/storeboard/internal/logging"
	"github.com/tomtom215/storeboard/internal/metrics"
	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/rng"
)

const cacheType = "dataset"

// ProviderConfig configures a Provider.
type ProviderConfig struct {
	DefaultSeed int64
	Days        int
	Location    *time.Location

	// MaxDatasets bounds how many seeds are held in memory at once.
	MaxDatasets int

	// TTL is how long a built dataset is kept before it is rebuilt.
	TTL time.Duration

	// Now is the clock used for "today". Nil means time.Now.
	Now func() time.Time
}

// Provider builds datasets on demand and keeps them in a bounded cache
// keyed by seed and window end date, so a new calendar day yields a new
// corpus while repeated requests within a day share one.
//
// Datasets handed out are shared and must not be modified.
type Provider struct {
	cfg   ProviderConfig
	store cache.Store[*models.SampleOverviewData]

	buildMu sync.Mutex
	ready   atomic.Bool
}

// NewProvider creates a Provider. Zero config fields take defaults.
func NewProvider(cfg ProviderConfig) *Provider {
	if cfg.Days <= 0 {
		cfg.Days = DefaultDays
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.MaxDatasets <= 0 {
		cfg.MaxDatasets = 8
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.DefaultSeed = rng.NormalizeSeed(cfg.DefaultSeed)

	return &Provider{
		cfg: cfg,
		store: cache.NewStore[*models.SampleOverviewData](cache.Config{
			Type:     cache.TypeLRU,
			TTL:      cfg.TTL,
			Capacity: cfg.MaxDatasets,
		}),
	}
}

// DefaultSeed returns the seed used when a request names none.
func (p *Provider) DefaultSeed() int64 {
	return p.cfg.DefaultSeed
}

// Today returns the current local date in the provider's timezone.
func (p *Provider) Today() string {
	return p.cfg.Now().In(p.cfg.Location).Format(models.DateFormat)
}

// Get returns the dataset for seed whose window ends today, building it
// if it is not cached. Seeds are normalised first, so seeds that drive the
// same generator share one cache entry. It returns ctx.Err() if ctx is
// already done.
func (p *Provider) Get(ctx context.Context, seed int64) (*models.SampleOverviewData, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get dataset for seed %d: %w", seed, err)
	}

	seed = rng.NormalizeSeed(seed)
	now := p.cfg.Now()
	key := p.key(seed, now)

	if ds, ok := p.store.Get(key); ok {
		metrics.RecordCacheLookup(cacheType, true)
		return ds, nil
	}

	p.buildMu.Lock()
	defer p.buildMu.Unlock()

	// Another caller may have built it while we waited.
	if ds, ok := p.store.Get(key); ok {
		metrics.RecordCacheLookup(cacheType, true)
		return ds, nil
	}
	metrics.RecordCacheLookup(cacheType, false)

	start := time.Now()
	ds := BuildWithOptions(Options{
		Seed:     seed,
		Days:     p.cfg.Days,
		End:      now,
		Location: p.cfg.Location,
		Now:      p.cfg.Now,
	})
	elapsed := time.Since(start)

	p.store.Set(key, ds)
	metrics.RecordDatasetBuild(elapsed, len(ds.DailyMetrics), len(ds.ProductSales))
	metrics.SetCacheSize(cacheType, p.store.Len())

	logging.Ctx(ctx).Info().
		Int64("seed", seed).
		Str("start_date", ds.StartDate).
		Str("end_date", ds.EndDate).
		Int("daily_metrics", len(ds.DailyMetrics)).
		Int("product_sales", len(ds.ProductSales)).
		Dur("duration", elapsed).
		Msg("Dataset built")

	return ds, nil
}

// Default returns the dataset for the configured default seed.
func (p *Provider) Default(ctx context.Context) (*models.SampleOverviewData, error) {
	return p.Get(ctx, p.cfg.DefaultSeed)
}

// Warm builds the default dataset and marks the provider ready.
func (p *Provider) Warm(ctx context.Context) error {
	if _, err := p.Default(ctx); err != nil {
		return err
	}
	p.ready.Store(true)
	return nil
}

// Ready reports whether Warm has completed at least once.
func (p *Provider) Ready() bool {
	return p.ready.Load()
}

// Invalidate drops every cached dataset.
func (p *Provider) Invalidate() {
	p.store.Clear()
	metrics.SetCacheSize(cacheType, 0)
}

// CacheStats returns the dataset cache statistics.
func (p *Provider) CacheStats() cache.Stats {
	return p.store.GetStats()
}

func (p *Provider) key(seed int64, now time.Time) string {
	return strconv.FormatInt(seed, 10) + "@" + now.In(p.cfg.Location).Format(models.DateFormat)
}

// Summarize describes ds without its records.
func Summarize(ds *models.SampleOverviewData) models.DatasetSummary {
	days := 0
	if start, err := time.Parse(models.DateFormat, ds.StartDate); err == nil {
		if end, err := time.Parse(models.DateFormat, ds.EndDate); err == nil {
			days = models.InclusiveDays(start, end)
		}
	}

	return models.DatasetSummary{
		Seed:              ds.Seed,
		StartDate:         ds.StartDate,
		EndDate:           ds.EndDate,
		Days:              days,
		LocationCount:     len(ds.Locations),
		ProductCount:      len(ds.Products),
		DailyMetricsCount: len(ds.DailyMetrics),
		ProductSalesCount: len(ds.ProductSales),
		GeneratedAt:       ds.GeneratedAt,
	}
}
