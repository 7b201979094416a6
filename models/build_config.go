// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildConfig is the declared schema of an effective build configuration.
//
// It is produced by decoding a merged fragment (see package merger) and
// handed to the external bundler as-is. Every section has a fixed type so
// that a value of the wrong shape is rejected at decode time instead of
// being silently coerced.
type BuildConfig struct {
	// Entry maps a chunk name to the ordered list of its entry modules.
	Entry map[string][]string `json:"entry,omitempty" yaml:"entry,omitempty"`

	Output    Output    `json:"output,omitzero" yaml:"output,omitempty"`
	DevServer DevServer `json:"devServer,omitzero" yaml:"devServer,omitempty"`
	Module    Module    `json:"module,omitzero" yaml:"module,omitempty"`

	// Plugins run in declaration order; layered fragments append to it.
	Plugins []Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// Output controls where bundled artifacts are written and served from.
type Output struct {
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	PublicPath string `json:"publicPath,omitempty" yaml:"publicPath,omitempty"`
	Filename   string `json:"filename,omitempty" yaml:"filename,omitempty"`
}

// DevServer holds settings of the development server.
type DevServer struct {
	Port           int                  `json:"port,omitempty" yaml:"port,omitempty"`
	ClientLogLevel string               `json:"clientLogLevel,omitempty" yaml:"clientLogLevel,omitempty"`
	Proxy          map[string]ProxyRule `json:"proxy,omitempty" yaml:"proxy,omitempty"`
}

// ProxyRule forwards every request whose path starts with the rule's key
// to Target.
type ProxyRule struct {
	// Target is an absolute URL, e.g. "http://localhost:8090".
	Target string `json:"target" yaml:"target"`

	// PathRewrite maps a regular expression to its replacement; rules are
	// applied to the request path before forwarding.
	// {"^/management": ""} strips the prefix.
	PathRewrite map[string]string `json:"pathRewrite,omitempty" yaml:"pathRewrite,omitempty"`
}

// Module groups the module transformation rules.
type Module struct {
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Rule applies the loaders in Use, in order, to every module whose path
// matches the Test pattern.
type Rule struct {
	Test string   `json:"test" yaml:"test"`
	Use  []Loader `json:"use,omitempty" yaml:"use,omitempty"`
}

// Loader references an asset loader by name together with its options.
type Loader struct {
	Loader  string         `json:"loader" yaml:"loader"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Plugin references a bundler plugin by name together with its options.
type Plugin struct {
	Name    string         `json:"name" yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}
