// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/blended-mgmt/internal/config"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/utils"
	"github.com/MKhiriev/blended-mgmt/models"
)

type bundleResource struct {
	client *utils.HTTPClient

	// started numbers Fetch calls; applied is the number of the call whose
	// result is held. A result older than applied is discarded.
	started atomic.Uint64

	mu      sync.RWMutex
	bundles []models.BundleInfo
	applied uint64

	logger *logger.Logger
}

// NewBundleResource constructs an HTTP implementation of [BundleResource].
// Every request is bounded by cfg.RequestTimeout in addition to the
// caller's context. The held collection starts empty.
func NewBundleResource(cfg config.Adapter, logger *logger.Logger) BundleResource {
	return &bundleResource{
		client:  utils.NewHTTPClient(cfg.RequestTimeout),
		bundles: []models.BundleInfo{},
		logger:  logger,
	}
}

// Fetch implements [BundleResource].
func (b *bundleResource) Fetch(ctx context.Context, endpoint string) ([]models.BundleInfo, error) {
	seq := b.started.Add(1)

	var bundles []models.BundleInfo
	if err := b.getJSON(ctx, endpoint, &bundles); err != nil {
		b.logger.Err(err).
			Str("func", "bundleResource.Fetch").
			Str("endpoint", endpoint).
			Msg("fetching bundles failed, keeping previous collection")
		return nil, err
	}

	if bundles == nil {
		bundles = []models.BundleInfo{}
	}

	b.mu.Lock()
	stale := seq < b.applied
	if !stale {
		b.bundles = bundles
		b.applied = seq
	}
	b.mu.Unlock()

	b.logger.Debug().
		Str("func", "bundleResource.Fetch").
		Str("endpoint", endpoint).
		Int("count", len(bundles)).
		Bool("stale", stale).
		Msg("bundles fetched")

	return cloneBundles(bundles), nil
}

// Current implements [BundleResource].
func (b *bundleResource) Current() []models.BundleInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return cloneBundles(b.bundles)
}

// FetchBundle implements [BundleResource].
func (b *bundleResource) FetchBundle(ctx context.Context, endpoint string, id int64) (models.BundleInfo, error) {
	var bundle models.BundleInfo
	if err := b.getJSON(ctx, endpoint+"/"+strconv.FormatInt(id, 10), &bundle); err != nil {
		b.logger.Err(err).
			Str("func", "bundleResource.FetchBundle").
			Int64("bundle_id", id).
			Msg("fetching bundle failed")
		return models.BundleInfo{}, err
	}

	return bundle, nil
}

func (b *bundleResource) getJSON(ctx context.Context, endpoint string, v any) error {
	url, err := utils.NormalizeURL(endpoint)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)}
	}

	resp, err := b.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return &FetchError{Endpoint: url, Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return &FetchError{Endpoint: url, StatusCode: resp.StatusCode(), Err: err}
	}

	if err = json.Unmarshal(resp.Body(), v); err != nil {
		return &FetchError{
			Endpoint:   url,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("%w: %w", ErrMalformedResponse, err),
		}
	}

	return nil
}

func cloneBundles(bundles []models.BundleInfo) []models.BundleInfo {
	out := make([]models.BundleInfo, len(bundles))
	for i, bundle := range bundles {
		out[i] = bundle
		if bundle.ExportPackages != nil {
			out[i].ExportPackages = append([]string(nil), bundle.ExportPackages...)
		}
	}
	return out
}
