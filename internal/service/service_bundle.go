package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/store"
	"github.com/MKhiriev/blended-mgmt/models"
)

type bundleService struct {
	bundleRepository store.BundleRepository

	logger *logger.Logger
}

func NewBundleService(bundleRepository store.BundleRepository, logger *logger.Logger) BundleService {
	return &bundleService{
		bundleRepository: bundleRepository,
		logger:           logger,
	}
}

func (b *bundleService) ListBundles(ctx context.Context) ([]models.BundleInfo, error) {
	return b.bundleRepository.ListBundles(ctx)
}

func (b *bundleService) GetBundle(ctx context.Context, bundleID int64) (models.BundleInfo, error) {
	bundle, err := b.bundleRepository.GetBundle(ctx, bundleID)
	if errors.Is(err, store.ErrBundleNotFound) {
		return models.BundleInfo{}, fmt.Errorf("%w: %d", ErrBundleNotFound, bundleID)
	}
	return bundle, err
}

func (b *bundleService) ImportBundles(ctx context.Context, bundles ...models.BundleInfo) error {
	if err := b.bundleRepository.SaveBundles(ctx, bundles...); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*bundleService.ImportBundles").
		Int("count", len(bundles)).
		Msg("bundles imported")
	return nil
}
