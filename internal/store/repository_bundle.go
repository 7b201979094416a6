package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/models"
)

// bundleRepository is the SQL implementation of [BundleRepository] over the
// "bundles" table. Queries are built with squirrel using the placeholder
// format of the connected driver.
type bundleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBundleRepository constructs a [BundleRepository] backed by db.
func NewBundleRepository(db *DB, logger *logger.Logger) BundleRepository {
	logger.Debug().Msg("creating bundle repository")
	return &bundleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bundleRepository) ListBundles(ctx context.Context) ([]models.BundleInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBundlesQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*bundleRepository.ListBundles").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bundleRepository.ListBundles").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bundles := []models.BundleInfo{}
	for rows.Next() {
		bundle, err := scanBundle(rows)
		if err != nil {
			log.Err(err).Str("func", "*bundleRepository.ListBundles").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bundles = append(bundles, bundle)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bundleRepository.ListBundles").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bundles, nil
}

func (r *bundleRepository) GetBundle(ctx context.Context, bundleID int64) (models.BundleInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBundleQuery(r.db.builder(), bundleID)
	if err != nil {
		log.Err(err).Str("func", "*bundleRepository.GetBundle").Msg("error building query")
		return models.BundleInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bundle, err := scanBundle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BundleInfo{}, ErrBundleNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*bundleRepository.GetBundle").
			Int64("bundle_id", bundleID).
			Msg("error scanning row")
		return models.BundleInfo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bundle, nil
}

func (r *bundleRepository) SaveBundles(ctx context.Context, bundles ...models.BundleInfo) error {
	log := logger.FromContext(ctx)

	if len(bundles) == 0 {
		return ErrNoBundlesProvided
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bundleRepository.SaveBundles").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, bundle := range bundles {
		query, args, err := buildUpsertBundleQuery(r.db.builder(), bundle)
		if err != nil {
			log.Err(err).
				Str("func", "*bundleRepository.SaveBundles").
				Int64("bundle_id", bundle.BundleID).
				Msg("error building query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*bundleRepository.SaveBundles").
				Int64("bundle_id", bundle.BundleID).
				Msg("error executing upsert")
			return fmt.Errorf("%w (bundle_id=%d): %w", ErrExecutingStatement, bundle.BundleID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*bundleRepository.SaveBundles").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "*bundleRepository.SaveBundles").
		Int("count", len(bundles)).
		Msg("bundles saved")
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBundle(row rowScanner) (models.BundleInfo, error) {
	var (
		bundle   models.BundleInfo
		packages string
	)
	if err := row.Scan(&bundle.BundleID, &bundle.SymbolicName, &packages); err != nil {
		return models.BundleInfo{}, err
	}

	decoded, err := decodePackages(packages)
	if err != nil {
		return models.BundleInfo{}, err
	}
	bundle.ExportPackages = decoded

	return bundle, nil
}
