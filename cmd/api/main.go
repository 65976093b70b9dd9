package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"workspace-agent/config"
	_ "workspace-agent/docs" // Swagger docs
	"workspace-agent/internal/actions"
	actionsDelivery "workspace-agent/internal/actions/delivery/http"
	assistantDelivery "workspace-agent/internal/assistant/delivery/http"
	"workspace-agent/internal/assistant/usecase"
	"workspace-agent/internal/httpserver"
	"workspace-agent/pkg/gcalendar"
	"workspace-agent/pkg/gmailapi"
	"workspace-agent/pkg/googleauth"
	"workspace-agent/pkg/log"
)

// @title       Workspace Agent API
// @description Gmail and Google Calendar assistant with an agent action-dispatch endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Workspace Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Google credential provider
	tokenStore := googleauth.NewFileStore(cfg.Google.TokenDir)
	authProvider, err := googleauth.NewProviderFromFile(cfg.Google.CredentialsPath, tokenStore, cfg.Google.RedirectURL)
	if err != nil {
		logger.Error(ctx, "Failed to load Google credentials: ", err)
		return
	}

	gmailClient := gmailapi.NewClient(authProvider.Scoped(googleauth.GmailScopes))
	calendarClient := gcalendar.NewClient(authProvider.Scoped(googleauth.CalendarScopes))

	if !authProvider.Authorized(googleauth.GmailScopes) {
		logger.Warn(ctx, "No stored Gmail token, visit /authorize to grant access")
	}

	// 4. Assistant domain
	assistantUC := usecase.New(logger, gmailClient, calendarClient, cfg.Google.CalendarID, cfg.Google.EventUTCOffsetHours)
	assistantHandler := assistantDelivery.New(logger, assistantUC, authProvider)

	// 5. Agent action dispatch
	registry := actions.NewDefaultRegistry(assistantUC, logger)
	dispatcher := actions.NewDispatcher(registry, logger)
	security := actions.NewSecurityValidator(actions.SecurityConfig{
		AllowedIPs:      cfg.Actions.AllowedIPs,
		RateLimitPerMin: cfg.Actions.RateLimitPerMin,
	})
	actionsHandler := actionsDelivery.New(logger, dispatcher, security)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		ActionsHandler:   actionsHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
