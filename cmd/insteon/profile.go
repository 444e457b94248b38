package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errDeleteActiveProfile = errors.New("cannot delete the active profile")

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage settings profiles",
	Args:  cobra.NoArgs,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profiles; the active one is marked with *",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(ctx context.Context, database *db.DB) error {
			return listProfiles(ctx, database, os.Stdout)
		})
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a profile with an unconfigured hub",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activate, _ := cmd.Flags().GetBool("use")
		return withDB(cmd, func(ctx context.Context, database *db.DB) error {
			_, err := createProfile(ctx, database, args[0], activate)
			return err
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Make a profile the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(ctx context.Context, database *db.DB) error {
			return useProfile(ctx, database, args[0])
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a profile and its settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(ctx context.Context, database *db.DB) error {
			return deleteProfile(ctx, database, args[0])
		})
	},
}

func init() {
	profileCreateCmd.Flags().Bool("use", false, "Make the new profile active")
	profileCmd.AddCommand(profileListCmd, profileCreateCmd, profileUseCmd, profileDeleteCmd)
}

// withDB opens the settings database for the duration of fn.
func withDB(cmd *cobra.Command, fn func(ctx context.Context, database *db.DB) error) error {
	ctx := cmd.Context()
	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()
	return fn(ctx, database)
}

func listProfiles(ctx context.Context, database *db.DB, out io.Writer) error {
	profiles, err := database.Profiles().List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tNAME\tHUB")
	for _, p := range profiles {
		marker := ""
		if p.IsActive {
			marker = "*"
		}
		address := "-"
		h, err := database.Hubs().Get(ctx, p.ID)
		if err != nil && !errors.Is(err, db.ErrHubNotFound) {
			return err
		}
		if h != nil && h.Address != "" {
			address = fmt.Sprintf("%s:%d", h.Address, h.Port)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", marker, p.Name, address)
	}
	return w.Flush()
}

// createProfile adds a profile with the default API server and hub rows.
func createProfile(ctx context.Context, database *db.DB, name string, activate bool) (*db.Profile, error) {
	p := &db.Profile{Name: name}
	if err := database.Profiles().Create(ctx, p); err != nil {
		return nil, err
	}

	host, port, err := splitHostPort(db.DefaultAPIAddress)
	if err != nil {
		return nil, err
	}
	if err := database.APIServers().Save(ctx, &db.APIServer{ProfileID: p.ID, Host: host, Port: port}); err != nil {
		return nil, err
	}
	if err := database.Hubs().Save(ctx, &db.Hub{ProfileID: p.ID, Port: hub.DefaultPort}); err != nil {
		return nil, err
	}
	log.Info().Str("profile", name).Msg("Profile created")

	if activate {
		if err := database.Profiles().SetActive(ctx, p.ID); err != nil {
			return nil, err
		}
		p.IsActive = true
	}
	return p, nil
}

func useProfile(ctx context.Context, database *db.DB, name string) error {
	p, err := database.Profiles().GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %s", err, name)
	}
	if err := database.Profiles().SetActive(ctx, p.ID); err != nil {
		return err
	}
	log.Info().Str("profile", name).Msg("Profile activated")
	return nil
}

func deleteProfile(ctx context.Context, database *db.DB, name string) error {
	p, err := database.Profiles().GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %s", err, name)
	}
	if p.IsActive {
		return fmt.Errorf("%w: %s", errDeleteActiveProfile, name)
	}
	if err := database.Profiles().Delete(ctx, p.ID); err != nil {
		return err
	}
	log.Info().Str("profile", name).Msg("Profile deleted")
	return nil
}
