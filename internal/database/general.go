// file: internal/database/general.go
// version: 1.1.0
// guid: 1c7e3a9f-5d2b-4c8e-b4a6-9f0d7e2c5b8a

package database

import (
	"database/sql"
	"fmt"

	"github.com/playlistcompanion/playlist-companion/internal/metrics"
)

// GeneralSettings returns the singleton General row. EnsureSchema seeds the
// row on first open, so a missing row here is a real failure.
func (s *Store) GeneralSettings() (*GeneralSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	query := `SELECT OS, defaultMediaPlayer, lastWatchedPlId, lastWatchedVdoId
		  FROM General WHERE id = 1`
	var gs GeneralSettings
	var plID, vdoID sql.NullInt64
	err := s.db.QueryRow(query).Scan(&gs.OS, &gs.DefaultMediaPlayer, &plID, &vdoID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("general settings row: %w", ErrNotFound)
	}
	if err != nil {
		return nil, s.queryFailed(query, err)
	}
	gs.LastWatchedPlaylistID = int(plID.Int64)
	gs.LastWatchedVideoID = int(vdoID.Int64)
	metrics.IncQueryOK()
	return &gs, nil
}

// SetDefaultMediaPlayer persists the resolved player executable path.
func (s *Store) SetDefaultMediaPlayer(path string) error {
	_, err := s.exec("UPDATE General SET defaultMediaPlayer = ? WHERE id = 1", path)
	return err
}

// SetLastWatchedPlaylist remembers the active playlist across restarts.
func (s *Store) SetLastWatchedPlaylist(playlistID int) error {
	_, err := s.exec("UPDATE General SET lastWatchedPlId = ? WHERE id = 1", nullableID(playlistID))
	return err
}

// SetLastWatchedVideo remembers the current selection across restarts and
// playlist switches.
func (s *Store) SetLastWatchedVideo(videoID int) error {
	_, err := s.exec("UPDATE General SET lastWatchedVdoId = ? WHERE id = 1", nullableID(videoID))
	return err
}

// nullableID maps the in-memory "none" value 0 to NULL.
func nullableID(id int) interface{} {
	if id <= 0 {
		return nil
	}
	return id
}

// ReplaceMediaPlayers rebuilds the MediaPlayerPath table in full: delete
// all, re-insert. The table always exactly reflects the caller-provided
// present-moment snapshot, never an incremental diff.
func (s *Store) ReplaceMediaPlayers(entries []MediaPlayerEntry) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM MediaPlayerPath"); err != nil {
			return s.txFailed("DELETE MediaPlayerPath", err)
		}
		stmt, err := tx.Prepare("INSERT INTO MediaPlayerPath (playerName, playerPath) VALUES (?, ?)")
		if err != nil {
			return s.txFailed("INSERT MediaPlayerPath", err)
		}
		defer stmt.Close()
		for _, entry := range entries {
			if _, err := stmt.Exec(entry.Name, entry.Path); err != nil {
				return s.txFailed("INSERT MediaPlayerPath", err)
			}
		}
		return nil
	})
}

// GetMediaPlayerPath resolves a known player name to its executable path,
// returning ErrNotFound for names absent from the table.
func (s *Store) GetMediaPlayerPath(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return "", ErrNotOpen
	}
	var path string
	err := s.db.QueryRow("SELECT playerPath FROM MediaPlayerPath WHERE playerName = ?", name).Scan(&path)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("media player %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", s.queryFailed("SELECT MediaPlayerPath", err)
	}
	metrics.IncQueryOK()
	return path, nil
}

// ListMediaPlayers returns the known player entries ordered by name.
func (s *Store) ListMediaPlayers() ([]MediaPlayerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	query := "SELECT playerName, playerPath FROM MediaPlayerPath ORDER BY playerName"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, s.queryFailed(query, err)
	}
	defer rows.Close()

	var entries []MediaPlayerEntry
	for rows.Next() {
		var entry MediaPlayerEntry
		if err := rows.Scan(&entry.Name, &entry.Path); err != nil {
			return nil, s.queryFailed(query, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryFailed(query, err)
	}
	metrics.IncQueryOK()
	return entries, nil
}
