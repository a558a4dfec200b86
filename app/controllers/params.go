// Package controllers holds the HTTP handlers. Controllers bind and
// validate request bodies, call into services, and write the JSON
// envelope; they contain no business logic of their own.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/tattvam/pkg/apperr"
)

// uintParam parses a numeric URL path parameter.
func uintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation("Invalid " + name)
	}
	return uint(n), nil
}

// queryInt returns a query-string integer, or def when absent or
// unparseable.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
