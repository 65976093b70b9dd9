package http

import (
	"github.com/gin-gonic/gin"

	"workspace-agent/internal/assistant"
	"workspace-agent/pkg/googleauth"
	pkgLog "workspace-agent/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Home(c *gin.Context)
	Authorize(c *gin.Context)
	OAuth2Callback(c *gin.Context)
	ReadEmails(c *gin.Context)
	ReadEvents(c *gin.Context)
}

type handler struct {
	l    pkgLog.Logger
	uc   assistant.UseCase
	auth *googleauth.Provider
}

// New creates the assistant HTTP handler.
func New(l pkgLog.Logger, uc assistant.UseCase, auth *googleauth.Provider) Handler {
	return &handler{l: l, uc: uc, auth: auth}
}

// RegisterRoutes maps the assistant routes onto the root group. The read
// endpoints keep their legacy aliases (/email, /calendar) alongside the
// plural forms.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/", func(c *gin.Context) { c.Redirect(302, "/home") })
	rg.GET("/home", h.Home)
	rg.GET("/authorize", h.Authorize)
	rg.GET("/oauth2callback", h.OAuth2Callback)
	rg.GET("/emails", h.ReadEmails)
	rg.GET("/email", h.ReadEmails)
	rg.GET("/events", h.ReadEvents)
	rg.GET("/calendar", h.ReadEvents)
}
