// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFragment reads a single fragment from a .json, .yaml or .yml file.
// An empty file yields an empty fragment.
func LoadFragment(path string) (Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fragment %s: %w", path, err)
	}

	fragment, err := ParseFragment(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("error parsing fragment %s: %w", path, err)
	}

	return fragment, nil
}

// LoadFragments reads fragments in the given order, stopping at the first
// failure.
func LoadFragments(paths ...string) ([]Fragment, error) {
	fragments := make([]Fragment, 0, len(paths))
	for _, path := range paths {
		fragment, err := LoadFragment(path)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	return fragments, nil
}

// ParseFragment decodes data according to ext (".json", ".yaml", ".yml").
//
// Mapping keys that are not strings, such as the 404 in "404: notFound",
// are converted to their string form. JSON integers become int, like their
// YAML counterparts; integers too large for int stay json.Number so no
// digits are lost.
func ParseFragment(data []byte, ext string) (Fragment, error) {
	var raw any

	switch strings.ToLower(ext) {
	case ".json":
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("error decoding json fragment: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("error decoding json fragment: %w", ErrTrailingData)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("error decoding yaml fragment: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if raw == nil {
		return Fragment{}, nil
	}

	value := normalize(raw)
	fragment, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is a %s", ErrNotMapping, ShapeOf(value))
	}

	return fragment, nil
}

// normalize rewrites decoded values into the shapes Merge understands:
// map[string]any, []any and scalars.
func normalize(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = normalize(item)
		}
		return out
	case json.Number:
		if n, err := strconv.Atoi(value.String()); err == nil {
			return n
		}
		if strings.ContainsAny(value.String(), ".eE") {
			if f, err := value.Float64(); err == nil {
				return f
			}
		}
		return value
	default:
		return v
	}
}
