package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
)

var ErrHubNotFound = errors.New("hub config not found")

// Hub holds the connection settings of the Insteon hub for a profile.
type Hub struct {
	ID        int64
	ProfileID int64
	Address   string
	Port      int
	Username  string
	Password  string
	PLMPort   string
	UpdatedAt time.Time
}

// Configured reports whether enough is known to reach a hub or modem.
func (h *Hub) Configured() bool {
	return h != nil && (h.Address != "" || h.PLMPort != "")
}

// Settings returns the hub fields as the string mapping the executor takes.
// Empty fields are left out so that validation reports them as missing.
func (h *Hub) Settings() map[string]string {
	out := make(map[string]string, 4)
	if h == nil {
		return out
	}
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	put("address", h.Address)
	if h.Port > 0 {
		out["port"] = strconv.Itoa(h.Port)
	}
	put("username", h.Username)
	put("password", h.Password)
	return out
}

// HubStore reads and writes the per-profile hub row.
type HubStore interface {
	Get(ctx context.Context, profileID int64) (*Hub, error)
	Save(ctx context.Context, h *Hub) error
	Delete(ctx context.Context, profileID int64) error
}

// Hubs returns a HubStore for this database.
func (db *DB) Hubs() HubStore {
	return &hubStore{db: db}
}

type hubStore struct {
	db *DB
}

func (s *hubStore) Get(ctx context.Context, profileID int64) (*Hub, error) {
	h := &Hub{}
	var updatedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile_id, address, port, username, password, plm_port, updated_at
		FROM hubs WHERE profile_id = ?
	`, profileID).Scan(&h.ID, &h.ProfileID, &h.Address, &h.Port, &h.Username, &h.Password, &h.PLMPort, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHubNotFound
	}
	if err != nil {
		return nil, err
	}
	h.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return h, nil
}

// Save inserts or replaces the hub row of h.ProfileID. A zero port is
// stored as the hub's default port.
func (s *hubStore) Save(ctx context.Context, h *Hub) error {
	if h.Port == 0 {
		h.Port = hub.DefaultPort
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO hubs (profile_id, address, port, username, password, plm_port)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET
			address = excluded.address,
			port = excluded.port,
			username = excluded.username,
			password = excluded.password,
			plm_port = excluded.plm_port,
			updated_at = datetime('now')
	`, h.ProfileID, h.Address, h.Port, h.Username, h.Password, h.PLMPort)
	if err != nil {
		return fmt.Errorf("failed to save hub config: %w", err)
	}
	return nil
}

func (s *hubStore) Delete(ctx context.Context, profileID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM hubs WHERE profile_id = ?`, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrHubNotFound
	}
	return nil
}
