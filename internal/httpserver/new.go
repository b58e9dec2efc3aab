package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"voice-skill/internal/middleware"
	skillHTTP "voice-skill/internal/skill/delivery/http"
	"voice-skill/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Request guards
	trustedProxies []string
	middleware     middleware.Middleware

	// Skill domain
	skillHandler skillHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies are the peers whose X-Forwarded-For is believed.
	// Empty means client IPs always come from the connection.
	TrustedProxies []string
	Middleware     middleware.Middleware
	SkillHandler   skillHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		trustedProxies: cfg.TrustedProxies,
		middleware:     cfg.Middleware,
		skillHandler:   cfg.SkillHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mapHandlers()

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
	if srv.skillHandler == nil {
		return errors.New("skill handler is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
