// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"maps"
	"slices"
)

// Merge folds fragments left to right into a new effective configuration.
//
// Order is significant: later fragments override scalars of earlier ones
// and append to their sequences. The inputs are never modified and the
// result shares no maps or slices with them, so Merge(a) is a structural
// copy of a.
//
// Merge returns [ErrNoFragments] for an empty call and a *[ConflictError]
// when a key changes shape between fragments; no partial result is
// returned in either case.
func Merge(fragments ...Fragment) (Fragment, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}

	acc := copyMapping(fragments[0])
	if acc == nil {
		acc = make(map[string]any)
	}

	for _, fragment := range fragments[1:] {
		if err := mergeInto(acc, fragment, ""); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// mergeInto merges src into dst in place. dst must be owned by the caller.
// Keys are visited in sorted order so that the reported conflict is stable.
func mergeInto(dst, src map[string]any, prefix string) error {
	for _, key := range slices.Sorted(maps.Keys(src)) {
		incoming := src[key]
		path := joinPath(prefix, key)

		existing, ok := dst[key]
		if !ok {
			dst[key] = deepCopy(incoming)
			continue
		}

		existingShape, incomingShape := ShapeOf(existing), ShapeOf(incoming)
		if existingShape != incomingShape {
			return &ConflictError{Path: path, Existing: existingShape, Incoming: incomingShape}
		}

		switch existingShape {
		case ShapeMapping:
			nested := asMapping(existing)
			if nested == nil {
				nested = make(map[string]any)
				dst[key] = nested
			}
			if err := mergeInto(nested, asMapping(incoming), path); err != nil {
				return err
			}
		case ShapeSequence:
			dst[key] = concat(existing.([]any), incoming.([]any))
		default:
			dst[key] = incoming
		}
	}

	return nil
}

func concat(head, tail []any) []any {
	if head == nil && tail == nil {
		return nil
	}
	out := make([]any, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, copySequence(tail)...)
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
