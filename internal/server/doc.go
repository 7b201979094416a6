// Package server runs HTTP handlers with signal handling and graceful
// shutdown. Both the management API and the dev server are served through it.
package server
