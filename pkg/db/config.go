package db

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoActiveProfile = errors.New("no active profile found")

// Config is the runtime configuration of the active profile.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
	Hub       *Hub
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return DefaultAPIAddress
	}
	return c.APIServer.Address()
}

// HubSettings returns the stored hub connection settings as an executor
// configuration mapping, without device or command keys.
func (c *Config) HubSettings() map[string]string {
	return c.Hub.Settings()
}

// ActiveConfig loads the complete configuration for the active profile.
// Missing API server or hub rows are left nil.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{Profile: profile}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	h, err := db.Hubs().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrHubNotFound) {
		return nil, fmt.Errorf("failed to get hub config: %w", err)
	}
	config.Hub = h

	return config, nil
}
