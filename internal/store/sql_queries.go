package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/blended-mgmt/models"
)

const bundlesTable = "bundles"

var bundleColumns = []string{"bundle_id", "symbolic_name", "export_packages"}

func buildListBundlesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(bundleColumns...).
		From(bundlesTable).
		OrderBy("bundle_id").
		ToSql()
}

func buildGetBundleQuery(b sq.StatementBuilderType, bundleID int64) (string, []any, error) {
	return b.Select(bundleColumns...).
		From(bundlesTable).
		Where(sq.Eq{"bundle_id": bundleID}).
		ToSql()
}

// buildUpsertBundleQuery builds an INSERT that overwrites an existing row
// with the same bundle_id. The ON CONFLICT form is understood by both
// PostgreSQL and SQLite.
func buildUpsertBundleQuery(b sq.StatementBuilderType, bundle models.BundleInfo) (string, []any, error) {
	packages, err := encodePackages(bundle.ExportPackages)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(bundlesTable).
		Columns(bundleColumns...).
		Values(bundle.BundleID, bundle.SymbolicName, packages).
		Suffix("ON CONFLICT (bundle_id) DO UPDATE SET symbolic_name = excluded.symbolic_name, export_packages = excluded.export_packages").
		ToSql()
}

// export_packages is stored as a JSON array in a TEXT column.
func encodePackages(packages []string) (string, error) {
	if len(packages) == 0 {
		return "[]", nil
	}

	data, err := json.Marshal(packages)
	if err != nil {
		return "", fmt.Errorf("error encoding export packages: %w", err)
	}
	return string(data), nil
}

func decodePackages(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var packages []string
	if err := json.Unmarshal([]byte(raw), &packages); err != nil {
		return nil, fmt.Errorf("error decoding export packages: %w", err)
	}
	if len(packages) == 0 {
		return nil, nil
	}
	return packages, nil
}
