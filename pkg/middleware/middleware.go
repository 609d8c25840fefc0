// Package middleware provides composable HTTP middleware for the service
// modules: request ids, request logging, CORS, body limits and trailing
// slash normalization.
package middleware

import "net/http"

// System composes middleware into a single handler wrapper.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type chain struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware chain.
func New() System {
	return &chain{}
}

func (c *chain) Use(mw func(http.Handler) http.Handler) {
	c.stack = append(c.stack, mw)
}

// Apply wraps handler so that the first middleware added runs first.
func (c *chain) Apply(handler http.Handler) http.Handler {
	for i := len(c.stack) - 1; i >= 0; i-- {
		handler = c.stack[i](handler)
	}
	return handler
}
