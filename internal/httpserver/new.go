package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rice-leaf-detection/internal/classification"
	"rice-leaf-detection/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Edge limits
	rateLimitPerMin int
	maxImageBytes   int64

	// Classification domain
	classificationUC classification.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int
	MaxImageBytes   int64

	ClassificationUC classification.UseCase
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
		rateLimitPerMin:  cfg.RateLimitPerMin,
		maxImageBytes:    cfg.MaxImageBytes,
		classificationUC: cfg.ClassificationUC,
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
	if srv.classificationUC == nil {
		return errors.New("classification usecase is required")
	}
	return nil
}
