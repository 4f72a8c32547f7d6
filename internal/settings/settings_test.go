// file: internal/settings/settings_test.go
// version: 1.1.0
// guid: 8f2b6d0e-4c7a-4e9b-a1d3-5b2f8d4e9a6c

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/testutil"
)

func stubFileExists(t *testing.T, present map[string]bool) {
	t.Helper()
	orig := fileExists
	fileExists = func(path string) bool { return present[path] }
	t.Cleanup(func() { fileExists = orig })
}

func TestDefaultPlayerPathEmptyByDefault(t *testing.T) {
	facade := New(testutil.OpenStore(t))

	path, err := facade.DefaultPlayerPath()
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestSetDefaultPlayerResolvesName(t *testing.T) {
	store := testutil.OpenStore(t)
	facade := New(store)

	require.NoError(t, store.ReplaceMediaPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
	}))

	require.NoError(t, facade.SetDefaultPlayer("VLC"))

	// The stored value is the resolved path, not the name.
	path, err := facade.DefaultPlayerPath()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vlc", path)
}

func TestSetDefaultPlayerUnknownName(t *testing.T) {
	facade := New(testutil.OpenStore(t))

	err := facade.SetDefaultPlayer("Winamp")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestRefreshKnownPlayersFiltersByFilesystem(t *testing.T) {
	store := testutil.OpenStore(t)
	facade := New(store)

	stubFileExists(t, map[string]bool{
		"/usr/bin/vlc": true,
		"/usr/bin/mpv": false,
	})

	kept, err := facade.RefreshKnownPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
		{Name: "MPV", Path: "/usr/bin/mpv"},
		{Name: "Broken", Path: ""},
	})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "VLC", kept[0].Name)

	players, err := facade.KnownPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "VLC", players[0].Name)
}

func TestRefreshKnownPlayersReplacesPreviousSet(t *testing.T) {
	store := testutil.OpenStore(t)
	facade := New(store)

	stubFileExists(t, map[string]bool{"/usr/bin/vlc": true, "/usr/bin/mpv": true})
	_, err := facade.RefreshKnownPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
		{Name: "MPV", Path: "/usr/bin/mpv"},
	})
	require.NoError(t, err)

	// VLC got uninstalled between refreshes.
	stubFileExists(t, map[string]bool{"/usr/bin/mpv": true})
	kept, err := facade.RefreshKnownPlayers([]database.MediaPlayerEntry{
		{Name: "VLC", Path: "/usr/bin/vlc"},
		{Name: "MPV", Path: "/usr/bin/mpv"},
	})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "MPV", kept[0].Name)

	_, err = store.GetMediaPlayerPath("VLC")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDefaultPlayerCandidatesNonEmpty(t *testing.T) {
	candidates := DefaultPlayerCandidates()
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Path)
	}
}

func TestBackupAndRestoreDelegate(t *testing.T) {
	store := testutil.OpenStore(t)
	facade := New(store)
	testutil.SeedPlaylist(t, store, "facade", 1)

	archive, err := facade.CreateBackup()
	require.NoError(t, err)
	_, err = os.Stat(archive)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(store.Path()), filepath.Dir(archive))

	require.NoError(t, facade.RestoreBackup(archive))

	playlists, err := store.ListPlaylists()
	require.NoError(t, err)
	assert.Len(t, playlists, 1)
}
