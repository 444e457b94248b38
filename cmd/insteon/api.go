package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Manage the REST API listen address of the active profile",
	Args:  cobra.NoArgs,
}

var apiSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the listen address; unset flags keep their stored value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(ctx context.Context, database *db.DB) error {
			cfg, err := database.ActiveConfig(ctx)
			if err != nil {
				return err
			}

			a := cfg.APIServer
			if a == nil {
				host, port, err := splitHostPort(db.DefaultAPIAddress)
				if err != nil {
					return err
				}
				a = &db.APIServer{ProfileID: cfg.Profile.ID, Host: host, Port: port}
			}
			if err := applyAPIFlags(cmd, a); err != nil {
				return err
			}

			if err := database.APIServers().Save(ctx, a); err != nil {
				return err
			}
			log.Info().Str("profile", cfg.Profile.Name).Str("address", a.Address()).Msg("API server settings saved")
			return printAPIServer(os.Stdout, cfg.Profile.Name, a.Address())
		})
	},
}

var apiShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the REST API listen address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(ctx context.Context, database *db.DB) error {
			cfg, err := database.ActiveConfig(ctx)
			if err != nil {
				return err
			}
			return printAPIServer(os.Stdout, cfg.Profile.Name, cfg.APIAddress())
		})
	},
}

func init() {
	addAPIFlags(apiSetCmd)
	apiCmd.AddCommand(apiSetCmd, apiShowCmd)
}

func addAPIFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("host", "", "Interface to listen on")
	flags.Int("port", 0, "Port to listen on")
}

func applyAPIFlags(cmd *cobra.Command, a *db.APIServer) error {
	flags := cmd.Flags()
	if flags.Changed("host") {
		host, _ := flags.GetString("host")
		if host == "" {
			return errors.New("host must not be empty")
		}
		a.Host = host
	}
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		if port < 1 || port > 65535 {
			return fmt.Errorf("port %d must be between 1 and 65535", port)
		}
		a.Port = port
	}
	return nil
}

func printAPIServer(out io.Writer, profile, address string) error {
	_, err := fmt.Fprintf(out, "profile: %s\naddress: %s\n", profile, address)
	return err
}

func splitHostPort(address string) (string, int, error) {
	host, p, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", address, err)
	}
	return host, port, nil
}
