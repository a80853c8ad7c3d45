// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package services provides suture.Service wrappers for storeboard components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and returns ctx.Err() on a clean shutdown so the supervisor does not count
it as a failure. Any other returned error triggers a restart with backoff.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, converting ListenAndServe into Serve
  - Drains connections with a bounded Shutdown on cancellation

Dataset Warm-up (DatasetWarmupService):
  - Builds the default dataset before readiness reports ready
  - Rebuilds it at local midnight and runs an OnRollover hook so
    memoised analytics do not outlive the day they were computed for

# Usage Example

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	tree.AddDataService(services.NewDatasetWarmupService(provider, services.DatasetWarmupConfig{
	    Location:   loc,
	    OnRollover: handler.ClearCache,
	}))
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{
	    Addr:            server.Addr,
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}
*/
package services
