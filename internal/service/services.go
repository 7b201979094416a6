package service

import (
	"github.com/MKhiriev/blended-mgmt/internal/config"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/store"
)

type Services struct {
	BundleService  BundleService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	bundleService := NewBundleValidationService().
		Wrap(NewBundleService(storages.BundleRepository, logger))

	return &Services{
		BundleService:  bundleService,
		AppInfoService: appInfoService,
	}, nil
}
