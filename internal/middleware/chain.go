// Package middleware holds the HTTP middleware of the lingua server.
package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain stacks mws around a handler, the first one outermost: in the
// server's Chain(Recovery, RequestID, Logger, CORS) a request meets
// Recovery first.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}
