package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/synthesis/internal/server"
	"github.com/ziadkadry99/synthesis/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live preview server",
	Long:  `Starts the preview server: every skin rendered on request, the FAQ accordion working without JavaScript, the boot sequence streamed over a websocket, a JSON API and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		c, err := loadContent(cfg)
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}
		watch := cfg.Server.Watch
		if cmd.Flags().Changed("watch") {
			watch, _ = cmd.Flags().GetBool("watch")
		}
		if watch && cfg.ContentFile == "" {
			log.Warn("--watch has no effect without content_file")
		}

		srv, err := server.New(server.Config{
			Port:        port,
			AllowAll:    cfg.Server.AllowAllOrigins,
			Watch:       watch,
			ContentFile: cfg.ContentFile,
			DefaultSkin: cfg.DefaultSkin,
			BaseURL:     cfg.BaseURL,
			Timing:      cfg.Boot.Timing(),
			AssetsDir:   cfg.Assets.Dir,
		}, c, log)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown", "error", err)
			}
		}()

		fmt.Fprintf(os.Stderr, "synthesis preview v%s starting on port %d\n", Version, port)
		for _, s := range site.Skins() {
			fmt.Fprintf(os.Stderr, "  %s  http://localhost:%d/%s\n", s.Name, port, s.ID)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("watch", false, "reload content_file when it changes")
	rootCmd.AddCommand(serveCmd)
}
