package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/logging"
	"github.com/vovakirdan/tui-labyrinth/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the labyrinth SSH server",
	Long: `Start an SSH server that lets users connect and watch mazes being solved.

Each SSH connection gets its own session with the mode picker menu.
Scores and runs are stored per server (all users share the same records).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.labyrinth/host_key

Examples:
  labyrinth serve                           # Listen on LABYRINTH_SSH_ADDR or 0.0.0.0:2222
  labyrinth serve --ssh :23234              # Listen on port 23234
  labyrinth serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", env.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := logging.New("labyrinth-ssh", flagLogLevel)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		logger.Error("cannot create server", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Starting labyrinth SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
