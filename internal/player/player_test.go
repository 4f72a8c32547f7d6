// file: internal/player/player_test.go
// version: 1.0.0
// guid: 0a4e8c2d-6b9f-4f1a-b3d5-7c4a0e6f1b8d

package player

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchWithoutPlayer(t *testing.T) {
	err := Launch("", "/videos/episode.mp4")
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestLaunchMissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-player")
	err := Launch(missing, "/videos/episode.mp4")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not start media player")
}
