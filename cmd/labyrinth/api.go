package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/logging"
	"github.com/vovakirdan/tui-labyrinth/internal/platform/httpapi"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

var (
	flagHTTPAddr string
	flagGinMode  string
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API",
	Long: `Serve mazes, solutions and run history as JSON.

Endpoints (under /api/v1):
  GET  /healthz                        - Liveness check
  GET  /mazes?width=&height=&seed=     - Generate a maze with its shortest path
  POST /solve                          - Shortest path through a posted maze
  GET  /runs?limit=                    - Recently walked mazes
  GET  /runs/:id                       - One run

Examples:
  labyrinth api
  labyrinth api --http :9090 --log-level debug
  curl 'localhost:8080/api/v1/mazes?width=21&height=15&seed=7'`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", env.HTTPAddr, "HTTP server address (host:port)")
	apiCmd.Flags().StringVar(&flagGinMode, "gin-mode", env.GinMode, "gin mode: debug, release, test")
}

func runAPI(_ *cobra.Command, _ []string) {
	logger := logging.New("labyrinth-api", flagLogLevel)

	// The API still serves mazes without a database; /runs answers 503.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		store = nil
	}

	router := httpapi.NewRouter(httpapi.Config{
		Addr:    flagHTTPAddr,
		BaseURL: "/api",
		Mode:    flagGinMode,
		Logger:  logger,
		Controllers: []httpapi.Controller{
			httpapi.NewMazeController(),
			httpapi.NewRunsController(store),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := router.Run(ctx)
	stop()

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Error("server stopped", "error", runErr)
		os.Exit(1)
	}
}
