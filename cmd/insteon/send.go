package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send --device <id>[,<id>...] (--command <name> | --cmd1 <hex> --cmd2 <hex>)",
	Short: "Send a command and print the results as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := map[string]string{}
		if database, err := openDB(ctx); err == nil {
			if active, err := database.ActiveConfig(ctx); err == nil {
				cfg = active.HubSettings()
			}
			_ = database.Close()
		}

		for _, key := range []string{command.KeyAddress, command.KeyPort, command.KeyUsername, command.KeyPassword} {
			if v.IsSet(key) {
				cfg[key] = v.GetString(key)
			}
		}
		for flag, key := range map[string]string{
			"device":        command.KeyDevice,
			"command":       command.KeyCommand,
			"cmd1":          command.KeyCmd1,
			"cmd2":          command.KeyCmd2,
			"extended-data": command.KeyExtendedData,
		} {
			if s, _ := cmd.Flags().GetString(flag); s != "" {
				cfg[key] = s
			}
		}

		results, err := command.NewExecutor(command.ModeSearch).Execute(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitWith(exitInvalidConf)
		}
		return exitWith(printResults(os.Stdout, results))
	},
}

func init() {
	flags := sendCmd.Flags()
	flags.String("device", "", "Device address, or a comma-separated list")
	flags.String("command", "", "Command name (see the commands subcommand)")
	flags.String("cmd1", "", "First command byte in hex")
	flags.String("cmd2", "", "Second command byte in hex")
	flags.String("extended-data", "", "Extended payload in hex")

	flags.String("address", "", "Hub IP address (env INSTEON_ADDRESS)")
	flags.String("port", "", "Hub port (env INSTEON_PORT)")
	flags.String("username", "", "Hub username (env INSTEON_USERNAME)")
	flags.String("password", "", "Hub password (env INSTEON_PASSWORD)")
	for _, key := range []string{"address", "port", "username", "password"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}

func printResults(w io.Writer, results []dispatch.CallResult) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return exitUsage
	}
	for _, r := range results {
		if !r.Success {
			return exitCallFailed
		}
	}
	return exitOK
}
