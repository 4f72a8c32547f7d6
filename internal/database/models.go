// file: internal/database/models.go
// version: 1.1.0
// guid: 7c4d1e9a-2b8f-4a6c-9e3d-5f0a8b7c2d1e

package database

import "time"

// Playlist status labels. Free-form user labels, not derived from counters;
// the schema restricts the column to exactly these three values.
const (
	StatusPlanned   = "Planned"
	StatusWatching  = "Watching"
	StatusCompleted = "Completed"
)

// Playlist represents one row of the Playlist table: a named, path-rooted
// collection of video entries with aggregate watch progress.
type Playlist struct {
	ID              int        `json:"playlistId"`
	Title           string     `json:"title"`
	Path            string     `json:"path"`
	Status          string     `json:"status"`
	TotalVideoCount int        `json:"totalVideoCount"`
	WatchedCount    int        `json:"watchedCount"`
	TotalTimeHour   int        `json:"totalTimeHour"`
	CreatedAt       time.Time  `json:"creationDateTime"`
	UpdatedAt       *time.Time `json:"updatingDateTime,omitempty"`
	LastWatchedAt   *time.Time `json:"lastWatchedDateTime,omitempty"`
}

// PlaylistUpdate carries the mutable playlist fields for UpdatePlaylist.
type PlaylistUpdate struct {
	Title           string `json:"title"`
	Status          string `json:"status"`
	TotalVideoCount int    `json:"totalVideoCount"`
	WatchedCount    int    `json:"watchedCount"`
	TotalTimeHour   int    `json:"totalTimeHour"`
}

// Video represents one media file entry belonging to exactly one playlist.
// ResumeTime is reserved for a future playback-offset consumer.
type Video struct {
	ID         int    `json:"videoId"`
	PlaylistID int    `json:"playlistId"`
	Path       string `json:"path"`
	IsWatched  bool   `json:"isWatched"`
	ResumeTime int    `json:"resumeTime"`
}

// GeneralSettings mirrors the singleton General row (id fixed to 1).
// A zero LastWatchedPlaylistID/LastWatchedVideoID means "none"; row ids are
// AUTOINCREMENT starting at 1, so 0 is never a valid reference.
type GeneralSettings struct {
	OS                    string `json:"os"`
	DefaultMediaPlayer    string `json:"defaultMediaPlayer"`
	LastWatchedPlaylistID int    `json:"lastWatchedPlaylistId"`
	LastWatchedVideoID    int    `json:"lastWatchedVideoId"`
}

// MediaPlayerEntry maps a known player name to an executable path that
// exists on the current machine.
type MediaPlayerEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
