// file: internal/database/store_test.go
// version: 1.1.0
// guid: 0d4f8b2a-6c9e-4a1d-8e3f-7b5c0a9d2e6f

package database_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/testutil"
)

func TestOpenIsIdempotent(t *testing.T) {
	store := database.New(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, store.Open())
	require.NoError(t, store.Open())
	require.NoError(t, store.Close())
}

func TestCloseWithoutOpen(t *testing.T) {
	store := database.New(filepath.Join(t.TempDir(), "test.sqlite"))
	assert.NoError(t, store.Close())
}

func TestOperationsOnClosedStore(t *testing.T) {
	store := database.New(filepath.Join(t.TempDir(), "test.sqlite"))

	_, err := store.ListPlaylists()
	assert.ErrorIs(t, err, database.ErrNotOpen)

	_, err = store.GeneralSettings()
	assert.ErrorIs(t, err, database.ErrNotOpen)

	_, err = store.EnsureSchema("Linux")
	assert.ErrorIs(t, err, database.ErrNotOpen)
}

func TestEnsureSchemaFirstRunOnlyOnce(t *testing.T) {
	store := database.New(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, store.Open())
	defer store.Close()

	firstRun, err := store.EnsureSchema("Linux")
	require.NoError(t, err)
	assert.True(t, firstRun)

	// Second pass over an initialized database must not re-signal first run.
	firstRun, err = store.EnsureSchema("Linux")
	require.NoError(t, err)
	assert.False(t, firstRun)
}

func TestEnsureSchemaSeedsGeneralRow(t *testing.T) {
	store := database.New(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, store.Open())
	defer store.Close()

	_, err := store.EnsureSchema("Windows")
	require.NoError(t, err)

	gs, err := store.GeneralSettings()
	require.NoError(t, err)
	assert.Equal(t, "Windows", gs.OS)
	assert.Equal(t, "", gs.DefaultMediaPlayer)
	assert.Equal(t, 0, gs.LastWatchedPlaylistID)
	assert.Equal(t, 0, gs.LastWatchedVideoID)
}

func TestEnsureSchemaSurvivesReopen(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, _ := testutil.SeedPlaylist(t, store, "reopened", 3)

	require.NoError(t, store.Close())
	require.NoError(t, store.Open())

	firstRun, err := store.EnsureSchema("Linux")
	require.NoError(t, err)
	assert.False(t, firstRun)

	got, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, "reopened", got.Title)
}

func TestQueryErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	qerr := &database.QueryError{Stmt: "SELECT 1", Err: inner}
	assert.ErrorIs(t, qerr, inner)
	assert.Contains(t, qerr.Error(), "SELECT 1")
}
