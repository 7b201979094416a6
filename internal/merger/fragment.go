// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import "fmt"

// Fragment is one partial, layerable configuration object.
//
// Values are mappings (map[string]any, Fragment or map[any]any with keys
// taken in their string form), sequences ([]any) or scalars (everything
// else, nil included).
type Fragment map[string]any

// Shape classifies a fragment value for merging.
type Shape int

const (
	ShapeScalar Shape = iota
	ShapeMapping
	ShapeSequence
)

func (s Shape) String() string {
	switch s {
	case ShapeMapping:
		return "mapping"
	case ShapeSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// ShapeOf returns the shape of a fragment value.
func ShapeOf(v any) Shape {
	switch v.(type) {
	case map[string]any, Fragment, map[any]any:
		return ShapeMapping
	case []any:
		return ShapeSequence
	default:
		return ShapeScalar
	}
}

func asMapping(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case Fragment:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out
	}
	return nil
}

// deepCopy returns v with every nested mapping and sequence copied.
// Nested Fragment values come back as plain map[string]any.
func deepCopy(v any) any {
	switch ShapeOf(v) {
	case ShapeMapping:
		return copyMapping(asMapping(v))
	case ShapeSequence:
		return copySequence(v.([]any))
	default:
		return v
	}
}

func copyMapping(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}

func copySequence(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = deepCopy(v)
	}
	return out
}
