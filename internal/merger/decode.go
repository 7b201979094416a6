// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Decode converts an effective fragment into the typed schema pointed to
// by v (usually *models.BuildConfig). Keys the schema does not declare are
// rejected with [ErrUnknownField]; values of the wrong type fail to decode.
func Decode(fragment Fragment, v any) error {
	data, err := json.Marshal(fragment)
	if err != nil {
		return fmt.Errorf("error encoding effective config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err = dec.Decode(v); err != nil {
		// encoding/json has no typed error for unknown fields.
		if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field") {
			return fmt.Errorf("%w: %s", ErrUnknownField, strings.TrimPrefix(msg, "json: unknown field "))
		}
		return fmt.Errorf("error decoding effective config: %w", err)
	}

	return nil
}
