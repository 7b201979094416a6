package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidBundleID    = errors.New("invalid bundle ID")
	ErrEmptySymbolicName  = errors.New("symbolic name is required")
	ErrEmptyBundles       = errors.New("bundles list cannot be empty")
	ErrDuplicateBundleID  = errors.New("duplicate bundle ID")
	ErrNoEntries          = errors.New("at least one entry point is required")
	ErrEmptyEntry         = errors.New("entry point has no modules")
	ErrEmptyOutputPath    = errors.New("output path is required")
	ErrInvalidPublicPath  = errors.New("public path must start with '/'")
	ErrInvalidPort        = errors.New("invalid dev server port")
	ErrInvalidProxyPrefix = errors.New("proxy prefix must start with '/'")
	ErrInvalidProxyTarget = errors.New("proxy target must be an absolute URL")
	ErrInvalidPathRewrite = errors.New("invalid path rewrite expression")
	ErrEmptyRuleTest      = errors.New("module rule has no test pattern")
	ErrEmptyLoader        = errors.New("loader name is required")
	ErrEmptyPluginName    = errors.New("plugin name is required")
)
