// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values before they reach storage or the
// bundler: bundle inventory records and effective build configurations.
//
// Each validator accepts a fixed set of types and can be limited to named
// fields (see the Field* constants). Errors wrap the Err* sentinels so
// callers can match them with errors.Is.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
