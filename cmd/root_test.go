// file: cmd/root_test.go
// version: 1.1.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2f

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"add", "list", "play", "backup", "restore", "serve"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootFlagsBound(t *testing.T) {
	for _, flag := range []string{"config", "db", "listen", "watch"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestAddCommandArgValidation(t *testing.T) {
	err := addCmd.Args(addCmd, []string{"only-title"})
	assert.Error(t, err)

	err = addCmd.Args(addCmd, []string{"title", "/videos/dir"})
	assert.NoError(t, err)
}

func TestPlaylistDrift(t *testing.T) {
	known := []database.Video{
		{ID: 1, Path: "/v/a.mp4"},
		{ID: 2, Path: "/v/b.mp4"},
		{ID: 3, Path: "/v/c.mp4"},
	}

	// One known video gone, one new file appeared.
	added, missing := playlistDrift(known, []string{"/v/a.mp4", "/v/b.mp4", "/v/d.mp4"})
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, missing)

	// Disk matches the playlist exactly.
	added, missing = playlistDrift(known, []string{"/v/a.mp4", "/v/b.mp4", "/v/c.mp4"})
	assert.Equal(t, 0, added)
	assert.Equal(t, 0, missing)

	// Empty directory: everything is missing.
	added, missing = playlistDrift(known, nil)
	assert.Equal(t, 0, added)
	assert.Equal(t, 3, missing)

	// Empty playlist: everything on disk is new.
	added, missing = playlistDrift(nil, []string{"/v/a.mp4"})
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, missing)
}
