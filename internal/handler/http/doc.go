// Package http implements the local HTTP API of the sync service.
//
// It exposes route wiring, request handlers and middleware. Content
// mutations and manual re-sync requests are handed to the service layer,
// which queues remote work after commit; the handlers answer without waiting
// for the remote knowledge base. The workflow endpoint is the exception and
// blocks until the run reaches a terminal state or times out.
package http
