package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campusmap/internal/catalog"
	"campusmap/internal/events"
	"campusmap/internal/prefs"
	"campusmap/internal/tui"
	"campusmap/internal/viewer"
	"campusmap/pkg/campusapi"
	"campusmap/pkg/graceful"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the terminal map viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := graceful.Context(cmd.Context(), logger)
		defer cancel()

		client, err := campusapi.NewClient(cfg.Client.BaseURL,
			campusapi.WithTimeout(cfg.Client.Timeout),
			campusapi.WithLogger(logger))
		if err != nil {
			return err
		}

		var store prefs.Store = prefs.NewMemoryStore()
		if cfg.Prefs.Path != "" {
			sq, err := prefs.OpenSQLite(cfg.Prefs.Path)
			if err != nil {
				return err
			}
			defer sq.Close()
			store = sq
		}

		bridge := tui.NewBridge()
		opts := []viewer.Option{
			viewer.WithMap(bridge),
			viewer.WithNotifier(bridge),
			viewer.WithSurface(bridge),
			viewer.WithLogger(logger),
		}
		if cfg.Kafka.Broker != "" {
			pub := events.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
			defer pub.Close()
			opts = append(opts, viewer.WithEvents(pub))
		}
		ctrl := viewer.New(client, store, opts...)
		defer ctrl.Shutdown()

		layers, err := client.SubscribeLayer(ctx)
		if err != nil {
			logger.Warn("live layer updates unavailable", zap.Error(err))
			layers = nil
		}

		model := tui.New(ctx, ctrl, tui.Options{
			Center:      catalog.MapCenter,
			Zoom:        catalog.MapZoom,
			LoadMarkers: client.Markers,
			Layers:      layers,
		})
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		bridge.Attach(p)

		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("viewer: %w", err)
		}
		return nil
	},
}
