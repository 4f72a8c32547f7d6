// file: internal/settings/settings.go
// version: 1.2.0
// guid: 7b3e9d5a-2c8f-4a1e-b6d4-9f0c5a7e2b8d

package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/playlistcompanion/playlist-companion/internal/database"
)

// ErrUnknownPlayer is returned when a player name cannot be resolved against
// the MediaPlayerPath table.
var ErrUnknownPlayer = errors.New("unknown media player")

// fileExists allows tests to override filesystem checks.
var fileExists = func(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Facade is the thin settings/backup surface over the store gateway. It owns
// no state of its own; every mutation routes through the store.
type Facade struct {
	store *database.Store
}

// New creates the settings facade over store.
func New(store *database.Store) *Facade {
	return &Facade{store: store}
}

// DefaultPlayerPath returns the configured player executable path. Empty
// means no player has been chosen yet.
func (f *Facade) DefaultPlayerPath() (string, error) {
	gs, err := f.store.GeneralSettings()
	if err != nil {
		return "", err
	}
	return gs.DefaultMediaPlayer, nil
}

// SetDefaultPlayer resolves name against the MediaPlayerPath table and
// persists the resolved executable path, never the name.
func (f *Facade) SetDefaultPlayer(name string) error {
	path, err := f.store.GetMediaPlayerPath(name)
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%q: %w", name, ErrUnknownPlayer)
	}
	if err != nil {
		return err
	}
	return f.store.SetDefaultMediaPlayer(path)
}

// RefreshKnownPlayers filters candidates down to those whose executable
// currently exists on the local filesystem and replaces the MediaPlayerPath
// table in full with the result, so the table always exactly reflects
// present-moment filesystem reality. The kept entries are returned.
func (f *Facade) RefreshKnownPlayers(candidates []database.MediaPlayerEntry) ([]database.MediaPlayerEntry, error) {
	var present []database.MediaPlayerEntry
	for _, candidate := range candidates {
		if candidate.Path != "" && fileExists(candidate.Path) {
			present = append(present, candidate)
		}
	}
	if err := f.store.ReplaceMediaPlayers(present); err != nil {
		return nil, err
	}
	return present, nil
}

// KnownPlayers lists the players recorded by the last refresh.
func (f *Facade) KnownPlayers() ([]database.MediaPlayerEntry, error) {
	return f.store.ListMediaPlayers()
}

// CreateBackup copies the live database file to a timestamped sibling and
// returns its path.
func (f *Facade) CreateBackup() (string, error) {
	return f.store.Backup()
}

// RestoreBackup overwrites the live database with the archive's contents,
// backing up the pre-restore state first.
func (f *Facade) RestoreBackup(archivePath string) error {
	return f.store.Restore(archivePath)
}
