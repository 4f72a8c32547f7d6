// file: internal/database/playlists.go
// version: 1.4.0
// guid: 8f3b6d1a-4c2e-4f9b-8a7d-0e5c3b1f9a6d

package database

import (
	"database/sql"
	"fmt"

	"github.com/playlistcompanion/playlist-companion/internal/metrics"
)

const playlistSelectColumns = `
	playlistId, playlistTitle, playlistPath, status,
	totalVideoCount, watchedCount, totalTimeHour,
	creationDateTime, updatingDateTime, lastWatchedDateTime
`

func scanPlaylist(scanner interface{ Scan(dest ...interface{}) error }, pl *Playlist) error {
	return scanner.Scan(
		&pl.ID, &pl.Title, &pl.Path, &pl.Status,
		&pl.TotalVideoCount, &pl.WatchedCount, &pl.TotalTimeHour,
		&pl.CreatedAt, &pl.UpdatedAt, &pl.LastWatchedAt,
	)
}

// CreatePlaylist inserts a playlist row and, when videoPaths is non-empty,
// all corresponding Video rows in the same transaction. Either every row is
// written or none is; a partially imported playlist is never observable.
// totalVideoCount snapshots len(videoPaths) when videos are imported.
func (s *Store) CreatePlaylist(pl *Playlist, videoPaths []string) (*Playlist, error) {
	if pl.Status == "" {
		pl.Status = StatusPlanned
	}
	totalCount := pl.TotalVideoCount
	if len(videoPaths) > 0 {
		totalCount = len(videoPaths)
	}

	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO Playlist (playlistTitle, playlistPath, status, totalVideoCount, watchedCount, totalTimeHour)
			 VALUES (?, ?, ?, ?, 0, ?)`,
			pl.Title, pl.Path, pl.Status, totalCount, pl.TotalTimeHour,
		)
		if err != nil {
			return s.txFailed("INSERT Playlist", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return s.txFailed("INSERT Playlist", err)
		}

		if len(videoPaths) == 0 {
			return nil
		}
		stmt, err := tx.Prepare("INSERT INTO Video (playlistID, videoPath) VALUES (?, ?)")
		if err != nil {
			return s.txFailed("INSERT Video", err)
		}
		defer stmt.Close()
		for _, path := range videoPaths {
			if _, err := stmt.Exec(id, path); err != nil {
				return s.txFailed("INSERT Video", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetPlaylistByID(int(id))
}

// GetPlaylistByID returns the playlist with the given identity, or
// ErrNotFound when no such row exists.
func (s *Store) GetPlaylistByID(id int) (*Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	query := fmt.Sprintf("SELECT %s FROM Playlist WHERE playlistId = ?", playlistSelectColumns)
	var pl Playlist
	err := scanPlaylist(s.db.QueryRow(query, id), &pl)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("playlist %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, s.queryFailed(query, err)
	}
	metrics.IncQueryOK()
	return &pl, nil
}

// UpdatePlaylist updates the mutable playlist fields and stamps
// updatingDateTime. The watched counter is clamped into
// [0, totalVideoCount] so the invariant holds after every mutation.
// Returns ErrNotFound when the playlist does not exist.
func (s *Store) UpdatePlaylist(id int, upd PlaylistUpdate) error {
	watched := upd.WatchedCount
	if watched < 0 {
		watched = 0
	}
	if watched > upd.TotalVideoCount {
		watched = upd.TotalVideoCount
	}

	res, err := s.exec(
		`UPDATE Playlist SET playlistTitle = ?, status = ?, totalVideoCount = ?,
		 watchedCount = ?, totalTimeHour = ?, updatingDateTime = CURRENT_TIMESTAMP
		 WHERE playlistId = ?`,
		upd.Title, upd.Status, upd.TotalVideoCount, watched, upd.TotalTimeHour, id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("playlist %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeletePlaylist removes the playlist and all its videos in one
// transaction. Deleting a non-existent id returns ErrNotFound without side
// effects.
func (s *Store) DeletePlaylist(id int) error {
	return s.withTx(func(tx *sql.Tx) error {
		var existing int
		err := tx.QueryRow("SELECT playlistId FROM Playlist WHERE playlistId = ?", id).Scan(&existing)
		if err == sql.ErrNoRows {
			return fmt.Errorf("playlist %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return s.txFailed("SELECT Playlist", err)
		}
		if _, err := tx.Exec("DELETE FROM Video WHERE playlistID = ?", id); err != nil {
			return s.txFailed("DELETE Video", err)
		}
		if _, err := tx.Exec("DELETE FROM Playlist WHERE playlistId = ?", id); err != nil {
			return s.txFailed("DELETE Playlist", err)
		}
		return nil
	})
}

// ListPlaylists returns every playlist ordered by identity ascending, so
// newly created playlists sort last. Callers re-read through here after
// watch transitions to pick up fresh counters.
func (s *Store) ListPlaylists() ([]Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	query := fmt.Sprintf("SELECT %s FROM Playlist ORDER BY playlistId ASC", playlistSelectColumns)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, s.queryFailed(query, err)
	}
	defer rows.Close()

	var playlists []Playlist
	for rows.Next() {
		var pl Playlist
		if err := scanPlaylist(rows, &pl); err != nil {
			return nil, s.queryFailed(query, err)
		}
		playlists = append(playlists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryFailed(query, err)
	}
	metrics.IncQueryOK()
	metrics.SetPlaylistCount(len(playlists))
	return playlists, nil
}
