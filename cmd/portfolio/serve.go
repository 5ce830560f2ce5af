package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jortwiebrens/portfolio/log"
	"github.com/jortwiebrens/portfolio/site"
	"github.com/jortwiebrens/portfolio/site/content"
	"github.com/jortwiebrens/portfolio/site/state"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr, contentPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, err := site.LoadConfig(ctx)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if addr != "" {
				c.ListenAddr = addr
			}
			if contentPath != "" {
				c.ContentPath = contentPath
			}

			logger := log.NewWith(site.ServiceName, log.Options{
				Level:  c.LogLevel,
				Format: c.LogFormat,
			})
			slog.SetDefault(logger)

			store, err := loadStore(c.ContentPath)
			if err != nil {
				return err
			}

			return serve(log.IntoContext(ctx, logger), c, store)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides PORTFOLIO_LISTEN_ADDR")
	cmd.Flags().StringVar(&contentPath, "content", "", "content file, overrides PORTFOLIO_CONTENT_PATH")

	return cmd
}

func serve(ctx context.Context, c *site.Config, store *content.Store) error {
	l := log.FromContext(ctx)

	srv := &http.Server{
		Addr:              c.ListenAddr,
		Handler:           state.Make(c, store, l).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	l.Info("starting server", "addr", c.ListenAddr, "dev", c.Dev)

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", c.ListenAddr, err)
		}
		return nil
	case <-ctx.Done():
	}

	l.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// loadStore reads content from path, or the embedded content when path is
// empty.
func loadStore(path string) (*content.Store, error) {
	if path == "" {
		return content.Default()
	}

	store, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return store, nil
}
