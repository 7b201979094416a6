// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFragments is returned by [Merge] when called without fragments.
	ErrNoFragments = errors.New("at least one configuration fragment is required")

	// ErrConfigConflict matches every [ConflictError] via errors.Is.
	ErrConfigConflict = errors.New("configuration conflict")

	// ErrUnsupportedFormat is returned for fragment files that are neither
	// JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported fragment format")

	// ErrNotMapping is returned for a fragment whose top level is not a
	// mapping.
	ErrNotMapping = errors.New("configuration fragment must be a mapping")

	// ErrTrailingData is returned for a JSON fragment followed by more
	// values.
	ErrTrailingData = errors.New("unexpected data after fragment")

	// ErrUnknownField is returned by [Decode] when the effective
	// configuration contains a key the target schema does not declare.
	ErrUnknownField = errors.New("unknown configuration field")
)

// ConflictError reports a key whose value changes shape between fragments,
// e.g. a mapping in one fragment and a scalar in the next.
type ConflictError struct {
	// Path is the dotted key path, e.g. "module.rules".
	Path string

	// Existing is the shape already held by the accumulator.
	Existing Shape

	// Incoming is the shape found in the fragment being merged.
	Incoming Shape
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s at %q: cannot merge %s into %s",
		ErrConfigConflict, e.Path, e.Incoming, e.Existing)
}

// Is makes errors.Is(err, ErrConfigConflict) hold for any *ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConfigConflict
}
