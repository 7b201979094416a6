package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blended-mgmt/internal/validators"
	"github.com/MKhiriev/blended-mgmt/models"
)

// BundleServiceWrapper defines middleware composition for BundleService.
// Implementations wrap an existing BundleService to add behavior such as
// validation.
type BundleServiceWrapper interface {
	Wrap(BundleService) BundleService // returns a decorated BundleService applying additional behavior
}

type BundleValidationService struct {
	inner     BundleService
	validator validators.Validator
}

func NewBundleValidationService() BundleServiceWrapper {
	return &BundleValidationService{
		validator: validators.NewBundleValidator(),
	}
}

func (v *BundleValidationService) ListBundles(ctx context.Context) ([]models.BundleInfo, error) {
	return v.inner.ListBundles(ctx)
}

func (v *BundleValidationService) GetBundle(ctx context.Context, bundleID int64) (models.BundleInfo, error) {
	if bundleID < 0 {
		return models.BundleInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidBundleID)
	}
	return v.inner.GetBundle(ctx, bundleID)
}

func (v *BundleValidationService) ImportBundles(ctx context.Context, bundles ...models.BundleInfo) error {
	if err := v.validator.Validate(ctx, bundles); err != nil {
		return fmt.Errorf("%w: error during bundle validation before saving: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ImportBundles(ctx, bundles...)
}

func (v *BundleValidationService) Wrap(wrapped BundleService) BundleService {
	v.inner = wrapped
	return v
}
