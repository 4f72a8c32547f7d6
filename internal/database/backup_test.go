// file: internal/database/backup_test.go
// version: 1.1.0
// guid: 4b8d2f6a-0e3c-4a5b-2d9f-1c7e4a0b3d6f

package database_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/testutil"
)

func backupFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "backup_") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestBackupCreatesTimestampedCopy(t *testing.T) {
	store := testutil.OpenStore(t)
	testutil.SeedPlaylist(t, store, "backed-up", 2)

	dest, err := store.Backup()
	require.NoError(t, err)

	name := filepath.Base(dest)
	assert.True(t, strings.HasPrefix(name, "backup_"), "got %q", name)
	assert.True(t, strings.HasSuffix(name, ".sqlite"), "got %q", name)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The live file is untouched and still serves queries.
	playlists, err := store.ListPlaylists()
	require.NoError(t, err)
	assert.Len(t, playlists, 1)
}

func TestBackupMissingSourceFails(t *testing.T) {
	store := database.New(filepath.Join(t.TempDir(), "never-created.sqlite"))

	_, err := store.Backup()
	require.Error(t, err)
	var backupErr *database.BackupError
	assert.ErrorAs(t, err, &backupErr)
}

func TestRestoreReplacesLiveDatabase(t *testing.T) {
	store := testutil.OpenStore(t)
	testutil.SeedPlaylist(t, store, "original", 2)

	// Snapshot, then diverge the live state.
	archive, err := store.Backup()
	require.NoError(t, err)
	testutil.SeedPlaylist(t, store, "added-later", 3)

	playlists, err := store.ListPlaylists()
	require.NoError(t, err)
	require.Len(t, playlists, 2)

	require.NoError(t, store.Restore(archive))

	// Back to the snapshot state, connection alive.
	playlists, err = store.ListPlaylists()
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "original", playlists[0].Title)
}

func TestRestoreBacksUpCurrentStateFirst(t *testing.T) {
	store := testutil.OpenStore(t)
	testutil.SeedPlaylist(t, store, "pre-restore", 1)

	archive, err := store.Backup()
	require.NoError(t, err)

	dir := filepath.Dir(store.Path())
	before := len(backupFiles(t, dir))

	require.NoError(t, store.Restore(archive))

	// Restore writes one more backup before touching the live file.
	after := len(backupFiles(t, dir))
	assert.Equal(t, before+1, after)
}

func TestRestoreUnreadableArchiveLeavesLiveUntouched(t *testing.T) {
	store := testutil.OpenStore(t)
	testutil.SeedPlaylist(t, store, "survivor", 2)

	err := store.Restore(filepath.Join(t.TempDir(), "no-such-archive.sqlite"))
	require.Error(t, err)
	var restoreErr *database.RestoreError
	assert.ErrorAs(t, err, &restoreErr)

	// Live data untouched, connection still working.
	playlists, err := store.ListPlaylists()
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "survivor", playlists[0].Title)

	// The pre-restore backup is unconditional; it exists on disk even though
	// the archive turned out to be unreadable.
	assert.Len(t, backupFiles(t, filepath.Dir(store.Path())), 1)
}
