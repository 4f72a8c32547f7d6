// file: internal/database/schema.go
// version: 1.2.0
// guid: 4b8d2f6a-0c9e-4d1b-a7f3-8e5c1b9d4a2f

package database

import (
	"database/sql"
	"log"
)

const schema = `
CREATE TABLE IF NOT EXISTS Playlist (
	playlistId INTEGER PRIMARY KEY AUTOINCREMENT,
	playlistTitle TEXT NOT NULL,
	playlistPath TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'Planned' CHECK(status IN ('Planned', 'Watching', 'Completed')),
	totalVideoCount INTEGER NOT NULL DEFAULT 0 CHECK(totalVideoCount >= 0),
	watchedCount INTEGER NOT NULL DEFAULT 0 CHECK(watchedCount >= 0),
	totalTimeHour INTEGER NOT NULL DEFAULT 0,
	creationDateTime DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updatingDateTime DATETIME,
	lastWatchedDateTime DATETIME
);

CREATE TABLE IF NOT EXISTS Video (
	videoID INTEGER PRIMARY KEY AUTOINCREMENT,
	playlistID INTEGER NOT NULL,
	videoPath TEXT NOT NULL,
	isWatched INTEGER NOT NULL DEFAULT 0,
	resumeTime INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (playlistID) REFERENCES Playlist(playlistId)
);

CREATE INDEX IF NOT EXISTS idx_video_playlist ON Video(playlistID);

CREATE TABLE IF NOT EXISTS General (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	OS TEXT NOT NULL CHECK(OS IN ('Windows', 'Linux', 'Mac')),
	defaultMediaPlayer TEXT NOT NULL DEFAULT '',
	lastWatchedPlId INTEGER,
	lastWatchedVdoId INTEGER
);

CREATE TABLE IF NOT EXISTS MediaPlayerPath (
	playerName TEXT PRIMARY KEY,
	playerPath TEXT NOT NULL
);
`

// EnsureSchema verifies the required tables exist with their constraints,
// creating them when absent, and lazily seeds the singleton General row.
// osLabel must be one of Windows, Linux or Mac. It returns firstRun=true when
// the General row had to be created, signalling the caller that first-run
// configuration is needed (the GUI collaborator is expected to open its
// configuration surface in response).
func (s *Store) EnsureSchema(osLabel string) (firstRun bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return false, ErrNotOpen
	}
	if _, err := s.db.Exec(schema); err != nil {
		return false, s.queryFailed("CREATE SCHEMA", err)
	}

	var id int
	err = s.db.QueryRow("SELECT id FROM General WHERE id = 1").Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		if _, err := s.db.Exec(
			"INSERT INTO General (id, OS, defaultMediaPlayer) VALUES (1, ?, '')", osLabel,
		); err != nil {
			return false, s.queryFailed("INSERT General", err)
		}
		log.Printf("[store] General row was empty, initialized defaults for OS %s", osLabel)
		return true, nil
	case err != nil:
		return false, s.queryFailed("SELECT General", err)
	}
	return false, nil
}
