package main

import (
	"context"
	"io"
	"maps"
	"os"
	"os/signal"
	"syscall"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/splunk"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   `search device="<id>[,<id>...]" (command=<name> | cmd1=<hex> cmd2=<hex>)`,
	Short: "Run as the insteoncommand search command, writing CSV results to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var hubSettings map[string]string
		database, err := openDB(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Unable to load hub settings")
		} else {
			defer func() { _ = database.Close() }()
			if cfg, err := database.ActiveConfig(ctx); err != nil {
				log.Error().Err(err).Msg("Unable to load hub settings")
			} else {
				hubSettings = cfg.HubSettings()
			}
		}

		return exitWith(runSearch(ctx, args, hubSettings, os.Stdout, command.NewExecutor(command.ModeSearch)))
	},
}

// runSearch executes the search command with the stored hub settings and
// returns the exit code. Errors are reported as a result row.
func runSearch(ctx context.Context, args []string, hubSettings map[string]string, out io.Writer, exec *command.Executor) int {
	params, err := splunk.ParseSearchArgs(args)
	if err != nil {
		_ = splunk.WriteSearchError(out, splunk.ErrorMessage(err))
		return exitInvalidConf
	}

	// Hub settings come from the stored profile only.
	cfg := make(map[string]string, len(params)+len(hubSettings))
	for k, val := range params {
		if !command.IsHubField(k) {
			cfg[k] = val
		}
	}
	maps.Copy(cfg, hubSettings)

	results, err := exec.Execute(ctx, cfg)
	if err != nil {
		_ = splunk.WriteSearchError(out, splunk.ErrorMessage(err))
		return exitInvalidConf
	}

	if err := splunk.WriteSearchResults(out, results); err != nil {
		log.Error().Err(err).Msg("Unable to write search results")
		return exitInvalidConf
	}
	return exitOK
}
