package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/spf13/cobra"
)

type bufferClearer interface {
	ClearBuffer(ctx context.Context) error
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the last command and reply held in the hub buffer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close() }()

		cfg, err := database.ActiveConfig(ctx)
		if err != nil {
			return err
		}

		controller, err := command.OpenController(cfg.Hub)
		if err != nil {
			return err
		}
		defer controller.Close()

		status, err := controller.Status(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			return err
		}

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			c, ok := controller.(bufferClearer)
			if !ok {
				return fmt.Errorf("clearing the buffer needs a hub: %w", device.ErrUnsupported)
			}
			return c.ClearBuffer(ctx)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("clear", false, "Clear the hub buffer after reading it")
}
