// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blended management handlers and commands.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or printed to the terminal to describe the outcome of
// an operation. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgInvalidBundleID is returned when the {id} path segment is not a
	// non-negative integer.
	MsgInvalidBundleID = "invalid bundle id"

	// MsgBundleNotFound is returned when no bundle with the requested id is
	// installed.
	MsgBundleNotFound = "bundle not found"

	// MsgListBundlesFailed is returned when the bundle list cannot be read
	// from storage.
	MsgListBundlesFailed = "error listing bundles"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgFetchFailed prefixes the HTTP status shown to the user when the
	// bundle list could not be fetched.
	MsgFetchFailed = "fetching bundles failed"

	// MsgNoBundles is printed when the management endpoint reports no
	// installed bundles.
	MsgNoBundles = "no bundles installed"
)
