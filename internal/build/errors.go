package build

import "errors"

var (
	ErrNoSources         = errors.New("no configuration fragments given")
	ErrNoOutputDir       = errors.New("output directory is required")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidConfig     = errors.New("invalid build configuration")
)
