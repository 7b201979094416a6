// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/blended-mgmt/internal/adapter"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/models"
)

// UpdateFunc receives the held collection after every refresh together with
// the fetch error, if any. On error the collection is the last good one.
type UpdateFunc func(bundles []models.BundleInfo, err error)

// BundleRefresher re-fetches the bundle list on a fixed interval.
type BundleRefresher struct {
	resource adapter.BundleResource
	endpoint string
	interval time.Duration
	onUpdate UpdateFunc

	logger *logger.Logger
}

func NewBundleRefresher(resource adapter.BundleResource, endpoint string, interval time.Duration, onUpdate UpdateFunc, logger *logger.Logger) *BundleRefresher {
	return &BundleRefresher{
		resource: resource,
		endpoint: endpoint,
		interval: interval,
		onUpdate: onUpdate,
		logger:   logger,
	}
}

// Run fetches once right away and then every interval until ctx is done.
func (r *BundleRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.refresh(ctx)

		select {
		case <-ctx.Done():
			r.logger.Debug().Str("func", "*BundleRefresher.Run").Msg("refresher stopped")
			return
		case <-ticker.C:
		}
	}
}

func (r *BundleRefresher) refresh(ctx context.Context) {
	_, err := r.resource.Fetch(ctx, r.endpoint)
	if ctx.Err() != nil {
		return
	}
	r.onUpdate(r.resource.Current(), err)
}
