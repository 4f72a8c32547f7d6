// file: internal/testutil/store.go
// version: 1.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
)

// OpenStore creates an opened, schema-initialized store on a temp sqlite
// file. The store is closed and the file removed when the test ends.
func OpenStore(t *testing.T) *database.Store {
	t.Helper()

	store := database.New(filepath.Join(t.TempDir(), "companion.sqlite"))
	require.NoError(t, store.Open())

	firstRun, err := store.EnsureSchema("Linux")
	require.NoError(t, err)
	require.True(t, firstRun, "fresh database should report first run")

	t.Cleanup(func() { store.Close() })
	return store
}

// SeedPlaylist creates a playlist with n generated video paths and returns it
// together with its videos in order.
func SeedPlaylist(t *testing.T, store *database.Store, title string, n int) (*database.Playlist, []database.Video) {
	t.Helper()

	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		paths = append(paths, fmt.Sprintf("/videos/%s/episode-%02d.mp4", title, i))
	}
	pl, err := store.CreatePlaylist(&database.Playlist{
		Title: title,
		Path:  "/videos/" + title,
	}, paths)
	require.NoError(t, err)

	videos, err := store.LoadVideos(pl.ID)
	require.NoError(t, err)
	require.Len(t, videos, n)
	return pl, videos
}
