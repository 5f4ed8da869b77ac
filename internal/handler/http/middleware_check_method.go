// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is registered with [chi.Mux.MethodNotAllowed]. chi calls it
// only when the path matches a route that has no handler for the request
// method; instead of chi's 405 it answers exactly like an unknown path, so a
// POST to /2/raw looks the same as a request for a page that does not exist.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
