package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/splunk"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var alertCmd = &cobra.Command{
	Use:   "alert --execute",
	Short: "Run as the send_insteon_command alert action, reading the payload from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		execute, _ := cmd.Flags().GetBool("execute")
		if !execute {
			fmt.Fprintln(os.Stderr, "FATAL Unsupported execution mode (expected --execute flag)")
			return exitWith(exitUsage)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return exitWith(runAlert(ctx, os.Stdin, os.Stderr, command.NewExecutor(command.ModeAlert)))
	},
}

func init() {
	alertCmd.Flags().Bool("execute", false, "Execute the alert action")
}

// runAlert executes one alert payload and returns the exit code.
func runAlert(ctx context.Context, in io.Reader, out io.Writer, exec *command.Executor) int {
	payload, err := splunk.ReadPayload(in)
	if err != nil {
		log.Error().Err(err).Msg("Unable to read alert payload")
		fmt.Fprintf(out, "ERROR Unexpected error: %s\n", err)
		return exitInvalidConf
	}

	log.Info().Str("search_name", payload.SearchName).Msg("Alert action triggered")

	results, err := exec.Execute(ctx, payload.Configuration)
	if err != nil {
		fmt.Fprintf(out, "ERROR %s\n", splunk.ErrorMessage(err))
		return exitInvalidConf
	}

	if err := splunk.WriteAlertLines(out, results); err != nil {
		log.Error().Err(err).Msg("Unable to write alert output")
		return exitInvalidConf
	}

	for _, r := range results {
		if !r.Success {
			return exitCallFailed
		}
	}
	return exitOK
}
