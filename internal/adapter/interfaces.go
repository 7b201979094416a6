// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound clients for remote management
// endpoints.
//
// The primary abstraction is [BundleResource], which fetches the list of
// installed bundles over HTTP and keeps the last successfully fetched
// collection. The implementation is built on resty ([NewBundleResource]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrInternalServerError] for 500).
// Every failure of a fetch additionally matches [ErrFetchFailed].
package adapter

import (
	"context"

	"github.com/MKhiriev/blended-mgmt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_resource_mock.go -package=mock

// BundleResource fetches a collection of bundles from a remote endpoint and
// exposes the most recent successful result.
//
// Implementations are safe for concurrent use. The held collection is
// replaced wholesale, so readers observe either the previous or the new
// collection in full.
type BundleResource interface {
	// Fetch performs exactly one GET request against endpoint. No caching,
	// retries or backoff are applied.
	//
	// On success the response body, a JSON array of bundles, replaces the
	// held collection and a copy of it is returned. When calls overlap, the
	// held collection follows the most recently started call that
	// succeeded: a slow older response never replaces a newer one, though
	// it is still returned to its own caller. On failure (transport
	// error, non-2xx status or undecodable body) a *[FetchError] is returned
	// and the held collection is left untouched.
	Fetch(ctx context.Context, endpoint string) ([]models.BundleInfo, error)

	// Current returns a copy of the last successfully fetched collection,
	// or an empty slice if no fetch has succeeded yet.
	Current() []models.BundleInfo

	// FetchBundle performs one GET against endpoint/{id} and returns a single
	// bundle. The held collection is not affected.
	FetchBundle(ctx context.Context, endpoint string, id int64) (models.BundleInfo, error)
}
