package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campusmap/internal/catalog"
	"campusmap/internal/config"
	"campusmap/internal/server"
	"campusmap/internal/storage"
	"campusmap/pkg/graceful"
)

var (
	exportOut    string
	exportUpload bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the map as a standalone HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := graceful.Context(cmd.Context(), logger)
		defer cancel()

		repo, closeRepo, err := openCatalog(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeRepo()

		var up storage.Uploader
		if exportUpload {
			if err := cfg.ValidateS3(); err != nil {
				return fmt.Errorf("upload: %w", err)
			}
			s3, err := storage.NewS3Service(storage.S3Config{
				Endpoint:  cfg.S3.Endpoint,
				AccessKey: cfg.S3.AccessKey,
				SecretKey: cfg.S3.SecretKey,
				UseSSL:    cfg.S3.UseSSL,
			}, logger)
			if err != nil {
				return err
			}
			up = s3
		}
		return runExport(ctx, repo, cfg, up, exportOut, cmd.OutOrStdout())
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "campus-map.html", `output file ("-" for stdout)`)
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "also upload to the configured S3 bucket")
}

// runExport renders the standalone page once, then writes it to out and,
// when up is set, uploads it. Both happen concurrently.
func runExport(ctx context.Context, repo catalog.Repository, c *config.Config, up storage.Uploader, out string, stdout io.Writer) error {
	page, err := server.BuildPage(ctx, repo, catalog.NewFilterState(), true)
	if err != nil {
		return fmt.Errorf("build page: %w", err)
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return err
	}
	html := buf.Bytes()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if out == "-" {
			_, err := stdout.Write(html)
			return err
		}
		if err := os.WriteFile(out, html, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		logger.Info("export written", zap.String("path", out), zap.Int("bytes", len(html)))
		return nil
	})
	if up != nil {
		g.Go(func() error {
			keys, err := storage.UploadExport(gctx, up, c.S3.Bucket, server.PageTitle, html, time.Now())
			if err != nil {
				return err
			}
			logger.Info("export uploaded", zap.String("bucket", c.S3.Bucket), zap.Strings("keys", keys))
			return nil
		})
	}
	return g.Wait()
}
