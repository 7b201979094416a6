// Package build turns an ordered list of configuration fragments into the
// effective build configuration handed to the bundler.
//
// Fragments are loaded and merged by package merger, decoded into
// models.BuildConfig and validated. The result is written to
// effective-config.json or effective-config.yaml in the output directory.
// The write is atomic: a failed build never leaves a partial file behind.
package build
