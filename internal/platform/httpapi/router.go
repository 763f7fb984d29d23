// Package httpapi serves mazes, solutions and run history as JSON over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Controller registers a group of routes on the API.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router builds the gin engine and runs the HTTP server.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      *log.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes, e.g. "/api"
	Mode        string // gin mode: debug, release or test
	Controllers []Controller
	Logger      *log.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      logger,
	}
}

// Handler returns the engine with every controller mounted under <baseURL>/v1.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.logger))

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		v1.GET("/healthz", healthz)
		for _, c := range r.controllers {
			c.RegisterPublic(v1)
		}
	}
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting HTTP server", "address", r.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			r.logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
		r.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
