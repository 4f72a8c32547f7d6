// file: internal/database/videos.go
// version: 1.2.0
// guid: 6a1f9c4b-3e8d-4b2a-9f7c-2d0e8a5b1c3f

package database

import (
	"database/sql"
	"fmt"

	"github.com/playlistcompanion/playlist-companion/internal/metrics"
)

// LoadVideos returns all videos of a playlist ordered by identity ascending.
func (s *Store) LoadVideos(playlistID int) ([]Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	query := `SELECT videoID, playlistID, videoPath, isWatched, resumeTime
		  FROM Video WHERE playlistID = ? ORDER BY videoID ASC`
	rows, err := s.db.Query(query, playlistID)
	if err != nil {
		return nil, s.queryFailed(query, err)
	}
	defer rows.Close()

	var videos []Video
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.ID, &v.PlaylistID, &v.Path, &v.IsWatched, &v.ResumeTime); err != nil {
			return nil, s.queryFailed(query, err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryFailed(query, err)
	}
	metrics.IncQueryOK()
	return videos, nil
}

// GetVideoByID returns a single video row, or ErrNotFound.
func (s *Store) GetVideoByID(videoID int) (*Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	query := `SELECT videoID, playlistID, videoPath, isWatched, resumeTime
		  FROM Video WHERE videoID = ?`
	var v Video
	err := s.db.QueryRow(query, videoID).Scan(&v.ID, &v.PlaylistID, &v.Path, &v.IsWatched, &v.ResumeTime)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("video %d: %w", videoID, ErrNotFound)
	}
	if err != nil {
		return nil, s.queryFailed(query, err)
	}
	metrics.IncQueryOK()
	return &v, nil
}

// MarkVideoWatched flips a video to watched and synchronizes the owning
// playlist's counter in the same transaction. The flag flip is conditioned
// on the prior state: an already-watched video is a no-op and returns
// changed=false. The watchedCount aggregate is re-derived from a COUNT of
// watched rows rather than incremented, clamped to totalVideoCount (a
// snapshot taken at import time), so repeated transitions can never drift
// the counter. lastWatchedDateTime is stamped on every real transition.
func (s *Store) MarkVideoWatched(videoID int) (changed bool, err error) {
	err = s.withTx(func(tx *sql.Tx) error {
		playlistID, wasWatched, err := videoState(tx, videoID)
		if err != nil {
			return err
		}
		if wasWatched {
			return nil
		}
		if _, err := tx.Exec("UPDATE Video SET isWatched = 1 WHERE videoID = ?", videoID); err != nil {
			return s.txFailed("UPDATE Video", err)
		}
		if _, err := tx.Exec(
			`UPDATE Playlist SET
			   watchedCount = MIN(totalVideoCount, (SELECT COUNT(*) FROM Video WHERE playlistID = ? AND isWatched = 1)),
			   lastWatchedDateTime = CURRENT_TIMESTAMP
			 WHERE playlistId = ?`,
			playlistID, playlistID,
		); err != nil {
			return s.txFailed("UPDATE Playlist watchedCount", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if changed {
		metrics.IncWatched()
	}
	return changed, nil
}

// MarkVideoUnwatched flips a video back to unwatched and re-derives the
// owning playlist's counter. Calling it on an already-unwatched video is a
// no-op on counters; the aggregate is floored at 0 by derivation.
func (s *Store) MarkVideoUnwatched(videoID int) (changed bool, err error) {
	err = s.withTx(func(tx *sql.Tx) error {
		playlistID, wasWatched, err := videoState(tx, videoID)
		if err != nil {
			return err
		}
		if !wasWatched {
			return nil
		}
		if _, err := tx.Exec("UPDATE Video SET isWatched = 0 WHERE videoID = ?", videoID); err != nil {
			return s.txFailed("UPDATE Video", err)
		}
		if _, err := tx.Exec(
			`UPDATE Playlist SET
			   watchedCount = MIN(totalVideoCount, (SELECT COUNT(*) FROM Video WHERE playlistID = ? AND isWatched = 1))
			 WHERE playlistId = ?`,
			playlistID, playlistID,
		); err != nil {
			return s.txFailed("UPDATE Playlist watchedCount", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if changed {
		metrics.IncUnwatched()
	}
	return changed, nil
}

// SetVideoResumeTime stores the playback offset for a video. The field is
// reserved for a future consumer; no component reads it back yet.
func (s *Store) SetVideoResumeTime(videoID, seconds int) error {
	res, err := s.exec("UPDATE Video SET resumeTime = ? WHERE videoID = ?", seconds, videoID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("video %d: %w", videoID, ErrNotFound)
	}
	return nil
}

func videoState(tx *sql.Tx, videoID int) (playlistID int, watched bool, err error) {
	err = tx.QueryRow("SELECT playlistID, isWatched FROM Video WHERE videoID = ?", videoID).
		Scan(&playlistID, &watched)
	if err == sql.ErrNoRows {
		return 0, false, fmt.Errorf("video %d: %w", videoID, ErrNotFound)
	}
	if err != nil {
		return 0, false, &QueryError{Stmt: "SELECT Video", Err: err}
	}
	return playlistID, watched, nil
}
