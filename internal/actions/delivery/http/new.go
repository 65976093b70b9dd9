package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"workspace-agent/internal/actions"
	pkgLog "workspace-agent/pkg/log"
)

// Handler is the public interface for the actions HTTP delivery layer.
type Handler interface {
	HandleAction(c *gin.Context)
}

type dispatcher interface {
	Dispatch(ctx context.Context, req actions.Request) (actions.Response, error)
}

type handler struct {
	l        pkgLog.Logger
	d        dispatcher
	security *actions.SecurityValidator
}

// New creates the actions HTTP handler.
func New(l pkgLog.Logger, d dispatcher, security *actions.SecurityValidator) Handler {
	return &handler{l: l, d: d, security: security}
}

// RegisterRoutes maps the actions endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/actions", h.HandleAction)
}
