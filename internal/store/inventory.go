package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/blended-mgmt/models"
)

// LoadInventory reads a list of bundles from a JSON or YAML file. The format
// is picked by extension; ".yaml" and ".yml" are YAML, everything else JSON.
// Records are not validated here; the bundle service does that on import.
func LoadInventory(path string) ([]models.BundleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading inventory file: %w", err)
	}

	var bundles []models.BundleInfo
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bundles)
	default:
		err = json.Unmarshal(data, &bundles)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidInventory, path, err)
	}

	if bundles == nil {
		bundles = []models.BundleInfo{}
	}
	return bundles, nil
}
