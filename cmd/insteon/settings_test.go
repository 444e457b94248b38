package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.OpenReady(context.Background(), filepath.Join(t.TempDir(), "insteon.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestApplyHubFlags_DefaultPortWhenUnset(t *testing.T) {
	c := &cobra.Command{}
	addHubFlags(c)
	require.NoError(t, c.ParseFlags([]string{"--address", "10.0.0.5"}))

	h := &db.Hub{ProfileID: 1}
	require.NoError(t, applyHubFlags(c, h))
	assert.Equal(t, "10.0.0.5", h.Address)
	assert.Equal(t, hub.DefaultPort, h.Port)
}

func TestApplyHubFlags_KeepsStoredValues(t *testing.T) {
	c := &cobra.Command{}
	addHubFlags(c)
	require.NoError(t, c.ParseFlags([]string{"--username", "admin"}))

	h := &db.Hub{Address: "10.0.0.5", Port: 8080, Password: "secret"}
	require.NoError(t, applyHubFlags(c, h))
	assert.Equal(t, "10.0.0.5", h.Address)
	assert.Equal(t, 8080, h.Port)
	assert.Equal(t, "admin", h.Username)
	assert.Equal(t, "secret", h.Password)
}

func TestApplyHubFlags_InvalidAddress(t *testing.T) {
	c := &cobra.Command{}
	addHubFlags(c)
	require.NoError(t, c.ParseFlags([]string{"--address", "hub.local"}))

	err := applyHubFlags(c, &db.Hub{})
	assert.ErrorIs(t, err, hub.ErrInvalidEndpoint)
}

func TestApplyAPIFlags(t *testing.T) {
	c := &cobra.Command{}
	addAPIFlags(c)
	require.NoError(t, c.ParseFlags([]string{"--port", "9090"}))

	a := &db.APIServer{Host: "127.0.0.1", Port: 8080}
	require.NoError(t, applyAPIFlags(c, a))
	assert.Equal(t, "127.0.0.1:9090", a.Address())

	c = &cobra.Command{}
	addAPIFlags(c)
	require.NoError(t, c.ParseFlags([]string{"--port", "70000"}))
	assert.Error(t, applyAPIFlags(c, a))
}

func TestProfiles_CreateUseDelete(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	office, err := createProfile(ctx, database, "office", false)
	require.NoError(t, err)
	assert.False(t, office.IsActive)

	require.NoError(t, useProfile(ctx, database, "office"))

	cfg, err := database.ActiveConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "office", cfg.Profile.Name)
	require.NotNil(t, cfg.Hub)
	assert.Equal(t, hub.DefaultPort, cfg.Hub.Port)
	assert.Equal(t, db.DefaultAPIAddress, cfg.APIAddress())

	assert.ErrorIs(t, deleteProfile(ctx, database, "office"), errDeleteActiveProfile)
	require.NoError(t, deleteProfile(ctx, database, db.DefaultProfile))
	assert.ErrorIs(t, useProfile(ctx, database, db.DefaultProfile), db.ErrProfileNotFound)

	var out bytes.Buffer
	require.NoError(t, listProfiles(ctx, database, &out))
	assert.Contains(t, out.String(), "office")
	assert.NotContains(t, out.String(), db.DefaultProfile)
}

func TestProfiles_CreateAndActivate(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	_, err := createProfile(ctx, database, "cabin", true)
	require.NoError(t, err)

	cfg, err := database.ActiveConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cabin", cfg.Profile.Name)

	_, err = createProfile(ctx, database, "cabin", false)
	assert.Error(t, err)
}

func TestListProfiles_ShowsHubAddress(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	cfg, err := database.ActiveConfig(ctx)
	require.NoError(t, err)
	cfg.Hub.Address = "10.0.0.4"
	require.NoError(t, database.Hubs().Save(ctx, cfg.Hub))

	var out bytes.Buffer
	require.NoError(t, listProfiles(ctx, database, &out))
	assert.Contains(t, out.String(), "10.0.0.4:25105")
	assert.Contains(t, out.String(), "*")
}
