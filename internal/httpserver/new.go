package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	actionsDelivery "workspace-agent/internal/actions/delivery/http"
	assistantDelivery "workspace-agent/internal/assistant/delivery/http"
	"workspace-agent/internal/middleware"
	"workspace-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Assistant domain (OAuth flow + read endpoints)
	assistantHandler assistantDelivery.Handler

	// Agent action dispatch
	actionsHandler actionsDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AssistantHandler assistantDelivery.Handler
	ActionsHandler   actionsDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		assistantHandler: cfg.AssistantHandler,
		actionsHandler:   cfg.ActionsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

func (srv HTTPServer) middleware() middleware.Middleware {
	return middleware.New(srv.l)
}
