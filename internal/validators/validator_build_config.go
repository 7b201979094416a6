package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/blended-mgmt/models"
)

const maxPort = 65535

// BuildConfigValidator checks an effective build configuration before it is
// written out or served.
type BuildConfigValidator struct{}

func NewBuildConfigValidator() Validator {
	return &BuildConfigValidator{}
}

func (v *BuildConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BuildConfig:
		return v.validateBuildConfig(ctx, value, fields...)
	case *models.BuildConfig:
		return v.validateBuildConfig(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BuildConfigValidator) validateBuildConfig(_ context.Context, cfg models.BuildConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntry, FieldOutput, FieldDevServer, FieldModule, FieldPlugins}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEntry:
			err = validateEntry(cfg.Entry)
		case FieldOutput:
			err = validateOutput(cfg.Output)
		case FieldDevServer:
			err = validateDevServer(cfg.DevServer)
		case FieldModule:
			err = validateModule(cfg.Module)
		case FieldPlugins:
			err = validatePlugins(cfg.Plugins)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEntry(entry map[string][]string) error {
	if len(entry) == 0 {
		return ErrNoEntries
	}
	for _, name := range sortedKeys(entry) {
		if len(entry[name]) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyEntry, name)
		}
	}
	return nil
}

// Output is optional; a public path without an output path makes no sense.
func validateOutput(output models.Output) error {
	if output.PublicPath != "" {
		if output.Path == "" {
			return ErrEmptyOutputPath
		}
		if !strings.HasPrefix(output.PublicPath, "/") {
			return fmt.Errorf("%w: %q", ErrInvalidPublicPath, output.PublicPath)
		}
	}
	return nil
}

func validateDevServer(devServer models.DevServer) error {
	if devServer.Port < 0 || devServer.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, devServer.Port)
	}

	for _, prefix := range sortedKeys(devServer.Proxy) {
		rule := devServer.Proxy[prefix]
		if !strings.HasPrefix(prefix, "/") {
			return fmt.Errorf("%w: %q", ErrInvalidProxyPrefix, prefix)
		}

		target, err := url.Parse(rule.Target)
		if err != nil || !target.IsAbs() || target.Host == "" {
			return fmt.Errorf("%w: %s -> %q", ErrInvalidProxyTarget, prefix, rule.Target)
		}

		for _, pattern := range sortedKeys(rule.PathRewrite) {
			if _, err = regexp.Compile(pattern); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidPathRewrite, prefix, err)
			}
		}
	}

	return nil
}

func validateModule(module models.Module) error {
	for i, rule := range module.Rules {
		if rule.Test == "" {
			return fmt.Errorf("module rule %d: %w", i, ErrEmptyRuleTest)
		}
		for j, loader := range rule.Use {
			if loader.Loader == "" {
				return fmt.Errorf("module rule %d, loader %d: %w", i, j, ErrEmptyLoader)
			}
		}
	}
	return nil
}

func validatePlugins(plugins []models.Plugin) error {
	for i, plugin := range plugins {
		if plugin.Name == "" {
			return fmt.Errorf("plugin %d: %w", i, ErrEmptyPluginName)
		}
	}
	return nil
}

// sortedKeys keeps error reporting deterministic across map iterations.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
