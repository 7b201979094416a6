package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blended-mgmt/models"
)

// BundleValidator checks bundle records before they are stored.
type BundleValidator struct{}

func NewBundleValidator() Validator {
	return &BundleValidator{}
}

// Validate accepts models.BundleInfo and []models.BundleInfo (or pointers to
// them). A list must be non-empty and free of duplicate ids.
func (v *BundleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BundleInfo:
		return v.validateBundle(ctx, value, fields...)
	case *models.BundleInfo:
		return v.validateBundle(ctx, *value, fields...)

	case []models.BundleInfo:
		return v.validateBundles(ctx, value, fields...)
	case *[]models.BundleInfo:
		return v.validateBundles(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BundleValidator) validateBundle(_ context.Context, bundle models.BundleInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBundleID, FieldSymbolicName}
	}

	for _, f := range fields {
		switch f {
		case FieldBundleID:
			if bundle.BundleID < 0 {
				return ErrInvalidBundleID
			}
		case FieldSymbolicName:
			if bundle.SymbolicName == "" {
				return ErrEmptySymbolicName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BundleValidator) validateBundles(ctx context.Context, bundles []models.BundleInfo, fields ...string) error {
	if len(bundles) == 0 {
		return ErrEmptyBundles
	}

	seen := make(map[int64]struct{}, len(bundles))
	for i, bundle := range bundles {
		if err := v.validateBundle(ctx, bundle, fields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		if _, ok := seen[bundle.BundleID]; ok {
			return fmt.Errorf("validation error at index %d: %w: %d", i, ErrDuplicateBundleID, bundle.BundleID)
		}
		seen[bundle.BundleID] = struct{}{}
	}

	return nil
}
