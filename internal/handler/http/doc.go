// Package http implements the bundle management REST API.
//
// It exposes the read-only inventory under /osgiManagement/bundles, the
// server version under /api/version and the middleware chain (panic
// recovery, request tracing, access logging, compression and request
// timeouts) that runs before requests reach the service layer.
package http
