package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"library-circulation/config"
	"library-circulation/internal/loan"
	"library-circulation/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Circulation domain
	loanUC loan.UseCase

	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Circulation domain
	LoanUseCase loan.UseCase

	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		loanUC:      cfg.LoanUseCase,
		rateLimit:   cfg.RateLimit,
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
	if srv.loanUC == nil {
		return errors.New("loan use case is required")
	}
	return nil
}
