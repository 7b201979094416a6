package store

import (
	"context"

	"github.com/MKhiriev/blended-mgmt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_repository_mock.go -package=mock

// BundleRepository persists the bundle inventory served by the management API.
type BundleRepository interface {
	// ListBundles returns all bundles ordered by bundle id.
	ListBundles(ctx context.Context) ([]models.BundleInfo, error)
	// GetBundle returns a single bundle or [ErrBundleNotFound].
	GetBundle(ctx context.Context, bundleID int64) (models.BundleInfo, error)
	// SaveBundles inserts or updates the given bundles in one transaction.
	SaveBundles(ctx context.Context, bundles ...models.BundleInfo) error
}
