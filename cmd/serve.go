package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kozaktomas/slideshow-builder/internal/config"
	"github.com/kozaktomas/slideshow-builder/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Slideshow Builder web server.
The API accepts catalog text and responds with built slideshows,
either synchronously or as polled async jobs.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "Listen address (default from SLIDESHOW_LISTEN_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if !cfg.Policies.Ranking.Known(cfg.Engine.Ranking) {
		return fmt.Errorf("unknown ranking policy: %s", cfg.Engine.Ranking)
	}
	if !cfg.Policies.Sequencing.Known(cfg.Engine.Sequencing) {
		return fmt.Errorf("unknown sequencing policy: %s", cfg.Engine.Sequencing)
	}

	addr := mustGetString(cmd, "listen")
	if addr == "" {
		addr = cfg.Server.ListenAddr
	}

	server := web.NewServer(cfg, addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Slideshow Builder API on %s\n", addr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
