// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package supervisor provides process supervision for storeboard using suture v4.

Long-running services are grouped into two child supervisors so that a
failure in one layer restarts only that layer:

	RootSupervisor ("storeboard")
	├── DataSupervisor ("data-layer")
	│   └── DatasetWarmupService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A warm-up that cannot build the dataset is restarted with backoff while
the HTTP server keeps answering health probes with not_ready.

Supervisor events (service start, failure, backoff, restart) are written
through the sutureslog hook; pass logging.NewSlogLogger() so they land in
the same zerolog stream as the rest of the application.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(warmup)
	tree.AddAPIService(httpService)

	errCh := tree.ServeBackground(ctx)
	<-errCh

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
	    // services ignored cancellation past ShutdownTimeout
	}

See the services subpackage for the service wrappers.
*/
package supervisor
