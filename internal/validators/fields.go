package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldBundleID targets the numeric identifier of a bundle.
	FieldBundleID = "bundle_id"

	// FieldSymbolicName targets the display name of a bundle.
	FieldSymbolicName = "symbolic_name"

	// FieldEntry targets the entry point map of a build configuration.
	FieldEntry = "entry"

	// FieldOutput targets the output section of a build configuration.
	FieldOutput = "output"

	// FieldDevServer targets the dev server section of a build configuration.
	FieldDevServer = "dev_server"

	// FieldModule targets the module rules of a build configuration.
	FieldModule = "module"

	// FieldPlugins targets the plugin list of a build configuration.
	FieldPlugins = "plugins"
)
