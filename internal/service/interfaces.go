package service

import (
	"context"

	"github.com/MKhiriev/blended-mgmt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_service_mock.go -package=mock

// BundleService exposes the bundle inventory to the management API.
type BundleService interface {
	ListBundles(ctx context.Context) ([]models.BundleInfo, error)
	GetBundle(ctx context.Context, bundleID int64) (models.BundleInfo, error)
	ImportBundles(ctx context.Context, bundles ...models.BundleInfo) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
