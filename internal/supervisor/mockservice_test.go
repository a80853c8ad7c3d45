// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// stubService implements suture.Service. It fails the first failures
// invocations of Serve and then blocks until its context is canceled.
type stubService struct {
	name     string
	failures int32
	starts   atomic.Int32
	stops    atomic.Int32
}

func newStubService(name string, failures int) *stubService {
	return &stubService{name: name, failures: int32(failures)}
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	defer s.stops.Add(1)

	if n <= s.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }
