package store

import "github.com/MKhiriev/blended-mgmt/internal/logger"

type Storages struct {
	BundleRepository BundleRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		BundleRepository: NewBundleRepository(db, logger),
	}
}
