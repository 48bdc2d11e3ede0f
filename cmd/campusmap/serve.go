package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"campusmap/internal/server"
	"campusmap/pkg/graceful"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the campus map server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := graceful.Context(cmd.Context(), logger)
		defer cancel()

		repo, closeRepo, err := openCatalog(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeRepo()

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		srv := server.New(server.Config{Addr: addr, AllowAll: cfg.Server.AllowAllOrigins}, repo, logger)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}
