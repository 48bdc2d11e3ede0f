package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"campusmap/internal/events"
	"campusmap/pkg/graceful"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Viewer interaction events",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print interaction events as JSON lines until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Kafka.Broker == "" {
			return fmt.Errorf("kafka.broker is not configured")
		}
		ctx, cancel := graceful.Context(cmd.Context(), logger)
		defer cancel()

		consumer := events.NewConsumer(cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.GroupID, logger)
		consumer.Start(ctx)
		defer consumer.Stop()

		enc := json.NewEncoder(cmd.OutOrStdout())
		for e := range consumer.Events() {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	eventsCmd.AddCommand(eventsTailCmd)
}
