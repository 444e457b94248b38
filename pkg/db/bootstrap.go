package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
)

// DefaultProfile is the name of the profile created on first run.
const DefaultProfile = "default"

// Bootstrap creates the default profile with an unconfigured hub and a
// loopback API server. It does nothing once any profile exists.
func (db *DB) Bootstrap(ctx context.Context) error {
	needed, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if !needed {
		return nil
	}

	return db.Tx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (name, is_active) VALUES (?, 1)
		`, DefaultProfile)
		if err != nil {
			return fmt.Errorf("failed to create default profile: %w", err)
		}

		profileID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get profile ID: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO api_servers (profile_id) VALUES (?)
		`, profileID); err != nil {
			return fmt.Errorf("failed to create default API server: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO hubs (profile_id, port) VALUES (?, ?)
		`, profileID, hub.DefaultPort); err != nil {
			return fmt.Errorf("failed to create default hub: %w", err)
		}

		return nil
	})
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// OpenReady opens the database at path, migrates it and bootstraps it on
// first use.
func OpenReady(ctx context.Context, path string) (*DB, error) {
	database, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := database.Bootstrap(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to bootstrap database: %w", err)
	}
	return database, nil
}
