package middleware

import (
	pkgLog "workspace-agent/pkg/log"
)

// Middleware bundles the cross-cutting Gin middlewares.
type Middleware struct {
	l pkgLog.Logger
}

// New creates the middleware bundle.
func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
