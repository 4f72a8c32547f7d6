// file: internal/database/general_test.go
// version: 1.1.0
// guid: 3a7c1e5f-9d2b-4f4a-1c8e-0b6d3f9a2c5e

package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/testutil"
)

func TestSetDefaultMediaPlayer(t *testing.T) {
	store := testutil.OpenStore(t)

	require.NoError(t, store.SetDefaultMediaPlayer("/usr/bin/vlc"))

	gs, err := store.GeneralSettings()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vlc", gs.DefaultMediaPlayer)
}

func TestLastWatchedRoundTrip(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "general", 2)

	require.NoError(t, store.SetLastWatchedPlaylist(pl.ID))
	require.NoError(t, store.SetLastWatchedVideo(videos[1].ID))

	gs, err := store.GeneralSettings()
	require.NoError(t, err)
	assert.Equal(t, pl.ID, gs.LastWatchedPlaylistID)
	assert.Equal(t, videos[1].ID, gs.LastWatchedVideoID)

	// Zero clears back to "none" (NULL in the row).
	require.NoError(t, store.SetLastWatchedVideo(0))
	gs, err = store.GeneralSettings()
	require.NoError(t, err)
	assert.Equal(t, 0, gs.LastWatchedVideoID)
	assert.Equal(t, pl.ID, gs.LastWatchedPlaylistID)
}

func TestReplaceMediaPlayersIsFullReplace(t *testing.T) {
	store := testutil.OpenStore(t)

	require.NoError(t, store.ReplaceMediaPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
		{Name: "MPV", Path: "/usr/bin/mpv"},
	}))

	players, err := store.ListMediaPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)

	// A second refresh with a disjoint set must not leave stale rows behind.
	require.NoError(t, store.ReplaceMediaPlayers([]database.MediaPlayerEntry{
		{Name: "MPlayer", Path: "/usr/bin/mplayer"},
	}))

	players, err = store.ListMediaPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "MPlayer", players[0].Name)

	_, err = store.GetMediaPlayerPath("VLC")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestReplaceMediaPlayersEmptySet(t *testing.T) {
	store := testutil.OpenStore(t)

	require.NoError(t, store.ReplaceMediaPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
	}))
	require.NoError(t, store.ReplaceMediaPlayers(nil))

	players, err := store.ListMediaPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestGetMediaPlayerPath(t *testing.T) {
	store := testutil.OpenStore(t)

	require.NoError(t, store.ReplaceMediaPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
	}))

	path, err := store.GetMediaPlayerPath("VLC")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vlc", path)

	_, err = store.GetMediaPlayerPath("nonexistent")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListMediaPlayersOrderedByName(t *testing.T) {
	store := testutil.OpenStore(t)

	require.NoError(t, store.ReplaceMediaPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
		{Name: "GNOME Videos", Path: "/usr/bin/totem"},
		{Name: "MPV", Path: "/usr/bin/mpv"},
	}))

	players, err := store.ListMediaPlayers()
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "GNOME Videos", players[0].Name)
	assert.Equal(t, "MPV", players[1].Name)
	assert.Equal(t, "VLC", players[2].Name)
}
