// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merger deep-merges an ordered sequence of configuration fragments
// into one effective configuration.
//
// Merge rules, applied key by key from the first fragment to the last:
//   - a key missing from the accumulator is inserted as-is;
//   - two mappings are merged recursively;
//   - two sequences are concatenated, earlier elements first, so plugin and
//     rule lists from a base fragment are never dropped by an override;
//   - two scalars: the later value wins;
//   - any other combination is a [ConflictError] naming the key path and
//     both shapes. Nothing is coerced.
//
// Fragments are read from JSON or YAML files with [LoadFragment] and the
// merged result is turned into the typed schema with [Decode].
package merger
