package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-skill/config"
	_ "voice-skill/docs" // Swagger docs
	"voice-skill/internal/httpserver"
	"voice-skill/internal/middleware"
	"voice-skill/internal/scalehelper"
	"voice-skill/internal/skill"
	skillHTTP "voice-skill/internal/skill/delivery/http"
	skillUC "voice-skill/internal/skill/usecase"
	"voice-skill/pkg/log"
)

// @title       Voice Skill API
// @description Request/response dispatcher for a voice-assistant skill.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Voice Skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Skill domain
	app := skill.RequireApplicationID(cfg.Skill.ApplicationID)
	if !cfg.Skill.VerifyApplicationID {
		logger.Warn(ctx, "Application id verification is disabled: accepting events for any skill")
		app = skill.AnyApplication()
	}

	catalog := scalehelper.NewCatalog(cfg.ScaleHelper.Scales)
	logger.Infof(ctx, "Scale catalog loaded: %d scales", len(catalog))

	uc, err := skillUC.New(scalehelper.New(logger, app, catalog), logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize skill: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.Security.TrustedProxies,
		Middleware: middleware.New(logger, middleware.Config{
			AllowedIPs:      cfg.Security.AllowedIPs,
			RateLimitPerMin: cfg.Security.RateLimitPerMin,
		}),
		SkillHandler: skillHTTP.New(logger, uc),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
