// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/blended-mgmt/internal/app"
)

// ErrInvalidBundleID is reported with 400 when the {id} path segment is not
// a non-negative integer.
var ErrInvalidBundleID = errors.New(app.MsgInvalidBundleID)
