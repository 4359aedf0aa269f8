// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-kb-sync/internal/utils"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method is not
// handled. This handler answers 404 with the JSON error envelope instead, so
// callers probing with other methods cannot tell which paths exist. A
// request that does resolve to a handler (path parameters included) is
// served through the router as usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSONError(r.Context(), w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

// notFound writes the JSON error envelope for unknown paths.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONError(r.Context(), w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
