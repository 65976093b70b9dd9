package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	actionsDelivery "workspace-agent/internal/actions/delivery/http"
	assistantDelivery "workspace-agent/internal/assistant/delivery/http"
	"workspace-agent/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := srv.middleware()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(mw.AccessLog())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.assistantHandler != nil {
		assistantDelivery.RegisterRoutes(&srv.gin.RouterGroup, srv.assistantHandler)
		srv.l.Infof(ctx, "Assistant routes registered (OAuth flow, /emails, /events)")
	} else {
		srv.l.Infof(ctx, "Assistant handler not configured, skipping routes")
	}

	if srv.actionsHandler != nil {
		agent := srv.gin.Group("/agent")
		actionsDelivery.RegisterRoutes(agent, srv.actionsHandler)
		srv.l.Infof(ctx, "Action dispatch route registered at POST /agent/actions")
	} else {
		srv.l.Infof(ctx, "Actions handler not configured, skipping route")
	}

	return nil
}
