// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/storeboard/internal/logging"
)

// DatasetWarmer builds the default dataset and can drop everything cached.
// *dataset.Provider satisfies it.
type DatasetWarmer interface {
	Warm(ctx context.Context) error
	Invalidate()
}

// DatasetWarmupConfig configures a DatasetWarmupService.
type DatasetWarmupConfig struct {
	// Location decides where midnight falls. Nil means time.Local.
	Location *time.Location

	// Now is the clock. Nil means time.Now.
	Now func() time.Time

	// Settle delays the rollover past midnight. Zero fires at midnight.
	Settle time.Duration

	// OnRollover runs after the new day's dataset has been warmed,
	// typically to clear memoised analytics results.
	OnRollover func()
}

// DatasetWarmupService warms the default dataset at startup and rebuilds it
// at each local midnight so the 120-day window always ends today.
//
// A failed warm-up is returned to the supervisor, which restarts the
// service with backoff; readiness stays false until a warm-up succeeds.
type DatasetWarmupService struct {
	warmer DatasetWarmer
	cfg    DatasetWarmupConfig
}

// NewDatasetWarmupService creates the service.
func NewDatasetWarmupService(warmer DatasetWarmer, cfg DatasetWarmupConfig) *DatasetWarmupService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Settle < 0 {
		cfg.Settle = 0
	}
	return &DatasetWarmupService{warmer: warmer, cfg: cfg}
}

// Serve implements suture.Service.
func (s *DatasetWarmupService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.String())

	start := time.Now()
	if err := s.warmer.Warm(ctx); err != nil {
		return fmt.Errorf("dataset warm-up failed: %w", err)
	}
	log.Info().Dur("duration", time.Since(start)).Msg("Default dataset warmed")

	for {
		wait := s.untilRollover()
		timer := time.NewTimer(wait)
		log.Debug().Dur("in", wait).Msg("Next dataset rollover scheduled")

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case <-timer.C:
			s.warmer.Invalidate()
			if err := s.warmer.Warm(ctx); err != nil {
				return fmt.Errorf("dataset rollover failed: %w", err)
			}
			if s.cfg.OnRollover != nil {
				s.cfg.OnRollover()
			}
			log.Info().
				Str("date", s.cfg.Now().In(s.cfg.Location).Format("2006-01-02")).
				Msg("Dataset rolled over to new day")
		}
	}
}

// untilRollover is the time left until the next local midnight plus Settle.
func (s *DatasetWarmupService) untilRollover() time.Duration {
	now := s.cfg.Now().In(s.cfg.Location)
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.cfg.Location)
	return next.Sub(now) + s.cfg.Settle
}

// String implements fmt.Stringer.
func (s *DatasetWarmupService) String() string {
	return "dataset-warmup"
}
