// Package server runs the HTTP server of the sync service.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown within the configured timeout.
package server
