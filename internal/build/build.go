package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/merger"
	"github.com/MKhiriev/blended-mgmt/internal/validators"
	"github.com/MKhiriev/blended-mgmt/models"
)

// Options describes one build invocation.
type Options struct {
	// Sources are fragment files, merged in order.
	Sources []string
	// OutDir receives the effective configuration file.
	OutDir string
	// Format of the written file.
	Format Format
}

// Result is the outcome of a successful [Run].
type Result struct {
	Config models.BuildConfig
	Path   string
}

// MergeSources loads the fragment files and merges them without applying
// the build schema.
func MergeSources(sources ...string) (merger.Fragment, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	fragments, err := merger.LoadFragments(sources...)
	if err != nil {
		return nil, err
	}

	return merger.Merge(fragments...)
}

// Resolve merges the fragment files, decodes the result into the build
// schema and validates it.
func Resolve(ctx context.Context, sources ...string) (models.BuildConfig, error) {
	effective, err := MergeSources(sources...)
	if err != nil {
		return models.BuildConfig{}, err
	}

	var cfg models.BuildConfig
	if err = merger.Decode(effective, &cfg); err != nil {
		return models.BuildConfig{}, err
	}

	if err = validators.NewBuildConfigValidator().Validate(ctx, cfg); err != nil {
		return models.BuildConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Run resolves opts.Sources and writes the effective configuration into
// opts.OutDir. Nothing is written unless every step succeeds.
func Run(ctx context.Context, opts Options, log *logger.Logger) (Result, error) {
	if opts.OutDir == "" {
		return Result{}, ErrNoOutputDir
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}

	cfg, err := Resolve(ctx, opts.Sources...)
	if err != nil {
		log.Err(err).Str("func", "build.Run").Strs("sources", opts.Sources).Msg("build aborted")
		return Result{}, err
	}

	data, err := Encode(cfg, opts.Format)
	if err != nil {
		return Result{}, err
	}

	path := filepath.Join(opts.OutDir, opts.Format.FileName())
	if err = writeFileAtomic(path, data); err != nil {
		log.Err(err).Str("func", "build.Run").Str("path", path).Msg("error writing effective config")
		return Result{}, err
	}

	log.Info().
		Str("func", "build.Run").
		Str("path", path).
		Int("entries", len(cfg.Entry)).
		Int("plugins", len(cfg.Plugins)).
		Msg("effective config written")

	return Result{Config: cfg, Path: path}, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error renaming temp file: %w", err)
	}

	return nil
}
