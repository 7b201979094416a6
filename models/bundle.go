// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BundleInfo describes a single installed bundle as reported by the
// management endpoint.
//
// The JSON names match the wire format of GET /osgiManagement/bundles:
//
//	[{"bundleId": 0, "symbolicName": "SystemBundle"}]
type BundleInfo struct {
	// BundleID is the unique numeric identifier assigned by the container.
	BundleID int64 `json:"bundleId" yaml:"bundleId"`

	// SymbolicName is the display name of the bundle.
	SymbolicName string `json:"symbolicName" yaml:"symbolicName"`

	// ExportPackages lists the packages exported by the bundle. Optional.
	ExportPackages []string `json:"exportPackages,omitempty" yaml:"exportPackages,omitempty"`
}
