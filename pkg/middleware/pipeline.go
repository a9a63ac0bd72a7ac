package middleware

import (
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/endpoint"
)

type Pipeline struct {
	Env *env.Environment
	JWT JWTMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Public wraps handlers that any caller may reach.
func (m Pipeline) Public(h endpoint.ApiHandler) endpoint.ApiHandler {
	return m.Chain(h, RequestID)
}

// Protected wraps handlers that require a valid bearer token.
func (m Pipeline) Protected(h endpoint.ApiHandler) endpoint.ApiHandler {
	return m.Chain(h, RequestID, m.JWT.Handle)
}
