package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var hubCmd = &cobra.Command{
	Use:   "hub",
	Short: "Manage the hub settings of the active profile",
	Args:  cobra.NoArgs,
}

var hubSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the hub settings; unset flags keep their stored value",
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

		h := cfg.Hub
		if h == nil {
			h = &db.Hub{ProfileID: cfg.Profile.ID}
		}
		if err := applyHubFlags(cmd, h); err != nil {
			return err
		}

		if err := database.Hubs().Save(ctx, h); err != nil {
			return err
		}
		log.Info().Str("profile", cfg.Profile.Name).Str("address", h.Address).Msg("Hub settings saved")
		return printHub(cfg.Profile.Name, h)
	},
}

var hubClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the hub settings of the active profile",
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
		if err := database.Hubs().Delete(ctx, cfg.Profile.ID); err != nil {
			return err
		}
		log.Info().Str("profile", cfg.Profile.Name).Msg("Hub settings removed")
		return nil
	},
}

var hubShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the hub settings",
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
		return printHub(cfg.Profile.Name, cfg.Hub)
	},
}

func init() {
	addHubFlags(hubSetCmd)
	hubCmd.AddCommand(hubSetCmd, hubShowCmd, hubClearCmd)
}

func addHubFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("address", "", "Hub IP address")
	flags.Int("port", hub.DefaultPort, "Hub web server port")
	flags.String("username", "", "Hub username")
	flags.String("password", "", "Hub password")
	flags.String("plm", "", "Serial port of a PowerLinc modem, used instead of the hub by the API and MCP servers")
}

// applyHubFlags copies the flags set on cmd into h. A hub without a stored
// port gets the default one.
func applyHubFlags(cmd *cobra.Command, h *db.Hub) error {
	flags := cmd.Flags()
	if flags.Changed("address") || flags.Changed("port") {
		address, _ := flags.GetString("address")
		if !flags.Changed("address") {
			address = h.Address
		}
		port, _ := flags.GetInt("port")
		if !flags.Changed("port") {
			port = h.Port
		}
		if port == 0 {
			port = hub.DefaultPort
		}
		endpoint, err := hub.ParseEndpoint(address, fmt.Sprint(port), h.Username, h.Password)
		if err != nil {
			return err
		}
		h.Address, h.Port = endpoint.Address, endpoint.Port
	}
	if flags.Changed("username") {
		h.Username, _ = flags.GetString("username")
	}
	if flags.Changed("password") {
		h.Password, _ = flags.GetString("password")
	}
	if flags.Changed("plm") {
		h.PLMPort, _ = flags.GetString("plm")
	}
	return nil
}

func printHub(profile string, h *db.Hub) error {
	if h == nil {
		h = &db.Hub{}
	}
	password := ""
	if h.Password != "" {
		password = strings.Repeat("*", 8)
	}
	_, err := fmt.Fprintf(os.Stdout, "profile:  %s\naddress:  %s\nport:     %d\nusername: %s\npassword: %s\nplm:      %s\n",
		profile, h.Address, h.Port, h.Username, password, h.PLMPort)
	return err
}
