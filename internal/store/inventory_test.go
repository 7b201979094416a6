package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/blended-mgmt/models"
)

func writeInventory(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadInventory_JSON(t *testing.T) {
	path := writeInventory(t, "bundles.json", `[
		{"bundleId": 0, "symbolicName": "SystemBundle"},
		{"bundleId": 1, "symbolicName": "blended.util", "exportPackages": ["blended.util"]}
	]`)

	got, err := LoadInventory(path)
	require.NoError(t, err)
	assert.Equal(t, []models.BundleInfo{
		{BundleID: 0, SymbolicName: "SystemBundle"},
		{BundleID: 1, SymbolicName: "blended.util", ExportPackages: []string{"blended.util"}},
	}, got)
}

func TestLoadInventory_YAML(t *testing.T) {
	path := writeInventory(t, "bundles.yaml", `
- bundleId: 0
  symbolicName: SystemBundle
- bundleId: 12
  symbolicName: blended.akka
  exportPackages:
    - blended.akka
`)

	got, err := LoadInventory(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(12), got[1].BundleID)
	assert.Equal(t, []string{"blended.akka"}, got[1].ExportPackages)
}

func TestLoadInventory_EmptyList(t *testing.T) {
	got, err := LoadInventory(writeInventory(t, "bundles.json", `[]`))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadInventory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "malformed json", file: "b.json", content: `[{"bundleId":`},
		{name: "object instead of list", file: "b.json", content: `{"bundleId": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInventory(writeInventory(t, tt.file, tt.content))
			assert.ErrorIs(t, err, ErrInvalidInventory)
		})
	}
}

// Record-level checks belong to the bundle service; the loader only parses.
func TestLoadInventory_DoesNotValidateRecords(t *testing.T) {
	got, err := LoadInventory(writeInventory(t, "b.yml", "- {bundleId: 1, symbolicName: a}\n- {bundleId: 1}\n"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Empty(t, got[1].SymbolicName)
}

func TestLoadInventory_MissingFile(t *testing.T) {
	_, err := LoadInventory(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
