// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package config

import (
	"fmt"
	"net/url"
)

// validateOrigin checks that origin is a bare http(s) scheme and host,
// the form browsers send in the Origin header.
func validateOrigin(origin string) error {
	parsed, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("failed to parse origin %q: %w", origin, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("origin %q scheme must be http or https", origin)
	}

	if parsed.Host == "" {
		return fmt.Errorf("origin %q host is required", origin)
	}

	if parsed.Path != "" && parsed.Path != "/" {
		return fmt.Errorf("origin %q should not contain a path", origin)
	}

	if parsed.RawQuery != "" {
		return fmt.Errorf("origin %q should not contain query parameters", origin)
	}

	return nil
}
