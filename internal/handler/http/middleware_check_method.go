// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the MethodNotAllowed handler of router.
//
// For a path registered with an exact pattern it answers 405 with an Allow
// header listing the methods the route does serve. Paths reached only through
// a wildcard, which for the dev server means static files, answer 404.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}

			allowed := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
			// GET routes answer HEAD through middleware.GetHead
			if _, ok := route.Handlers[http.MethodGet]; ok {
				if _, ok = route.Handlers[http.MethodHead]; !ok {
					allowed = append(allowed, http.MethodHead)
				}
			}
			slices.Sort(allowed)

			w.Header().Set("Allow", strings.Join(allowed, ", "))
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
