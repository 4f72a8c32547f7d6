// file: internal/navigator/navigator.go
// version: 1.3.0
// guid: 8e4b2d7f-1a9c-4f3e-b5d8-6c0f9a2e7b4d

package navigator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/playlistcompanion/playlist-companion/internal/database"
)

// Navigation edge conditions. These are expected steady-state signals the
// GUI maps to user-facing messages, not failures.
var (
	ErrEmptyPlaylist   = errors.New("playlist is empty")
	ErrEndOfPlaylist   = errors.New("this is the last video in the playlist")
	ErrStartOfPlaylist = errors.New("this is the first video in the playlist")
)

// ErrUnknownVideo is returned when a video id does not belong to the
// currently loaded playlist.
var ErrUnknownVideo = errors.New("video not found in current playlist")

// Repository is the slice of the store gateway the navigator needs. The
// concrete *database.Store satisfies it.
type Repository interface {
	LoadVideos(playlistID int) ([]database.Video, error)
	MarkVideoWatched(videoID int) (bool, error)
	MarkVideoUnwatched(videoID int) (bool, error)
	GeneralSettings() (*database.GeneralSettings, error)
	SetLastWatchedPlaylist(playlistID int) error
	SetLastWatchedVideo(videoID int) error
}

// Navigator tracks the active playlist's ordered videos and the current
// selection in memory. One Navigator exists per process; switching playlists
// replaces its working set. It holds no playlist-level counters — callers
// re-read those through ListPlaylists so there is a single source of truth.
type Navigator struct {
	repo Repository

	mu         sync.Mutex
	playlistID int
	videos     []database.Video
	currentID  int // 0 = no selection
}

// New creates a Navigator over the given repository.
func New(repo Repository) *Navigator {
	return &Navigator{repo: repo}
}

// LoadPlaylist resets the in-memory video list from the repository and
// remembers the selection in the General row. The current selection is
// restored from the persisted last-watched video only when that video still
// belongs to the newly loaded playlist; otherwise there is no selection.
func (n *Navigator) LoadPlaylist(playlistID int) error {
	videos, err := n.repo.LoadVideos(playlistID)
	if err != nil {
		return err
	}
	gs, err := n.repo.GeneralSettings()
	if err != nil {
		return err
	}

	current := 0
	if gs.LastWatchedVideoID > 0 {
		for _, v := range videos {
			if v.ID == gs.LastWatchedVideoID {
				current = v.ID
				break
			}
		}
	}
	if err := n.repo.SetLastWatchedPlaylist(playlistID); err != nil {
		return err
	}

	n.mu.Lock()
	n.playlistID = playlistID
	n.videos = videos
	n.currentID = current
	n.mu.Unlock()
	return nil
}

// PlaylistID returns the loaded playlist's identity, 0 when none is loaded.
func (n *Navigator) PlaylistID() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.playlistID
}

// Videos returns a copy of the in-memory ordered video list.
func (n *Navigator) Videos() []database.Video {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]database.Video, len(n.videos))
	copy(out, n.videos)
	return out
}

// Current returns the currently selected video, or ok=false when nothing is
// selected.
func (n *Navigator) Current() (database.Video, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if idx := n.indexOfLocked(n.currentID); idx >= 0 {
		return n.videos[idx], true
	}
	return database.Video{}, false
}

// Select makes videoID the current selection and persists it as the last
// watched video. The video must belong to the loaded playlist.
func (n *Navigator) Select(videoID int) error {
	n.mu.Lock()
	if n.indexOfLocked(videoID) < 0 {
		n.mu.Unlock()
		return fmt.Errorf("video %d: %w", videoID, ErrUnknownVideo)
	}
	n.currentID = videoID
	n.mu.Unlock()

	return n.repo.SetLastWatchedVideo(videoID)
}

// Next moves the selection to the following entry in the ordered list. At
// the last entry it reports ErrEndOfPlaylist and leaves the selection
// unchanged; with no selection it selects the first entry; on an empty list
// it reports ErrEmptyPlaylist.
func (n *Navigator) Next() (database.Video, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.videos) == 0 {
		return database.Video{}, ErrEmptyPlaylist
	}
	idx := n.indexOfLocked(n.currentID)
	switch {
	case idx < 0:
		n.currentID = n.videos[0].ID
		return n.videos[0], nil
	case idx == len(n.videos)-1:
		return n.videos[idx], ErrEndOfPlaylist
	default:
		n.currentID = n.videos[idx+1].ID
		return n.videos[idx+1], nil
	}
}

// Previous moves the selection to the preceding entry. At the first entry it
// reports ErrStartOfPlaylist and leaves the selection unchanged; with no
// selection it selects the last entry; on an empty list it reports
// ErrEmptyPlaylist.
func (n *Navigator) Previous() (database.Video, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.videos) == 0 {
		return database.Video{}, ErrEmptyPlaylist
	}
	idx := n.indexOfLocked(n.currentID)
	switch {
	case idx < 0:
		last := n.videos[len(n.videos)-1]
		n.currentID = last.ID
		return last, nil
	case idx == 0:
		return n.videos[0], ErrStartOfPlaylist
	default:
		n.currentID = n.videos[idx-1].ID
		return n.videos[idx-1], nil
	}
}

// MarkWatched transitions a video of the loaded playlist to watched. An
// already-watched video is a no-op (changed=false); callers wanting to move
// on should invoke Next instead. The repository synchronizes the playlist
// counter atomically with the flag.
func (n *Navigator) MarkWatched(videoID int) (changed bool, err error) {
	n.mu.Lock()
	idx := n.indexOfLocked(videoID)
	if idx < 0 {
		n.mu.Unlock()
		return false, fmt.Errorf("video %d: %w", videoID, ErrUnknownVideo)
	}
	already := n.videos[idx].IsWatched
	n.mu.Unlock()

	if already {
		return false, nil
	}
	changed, err = n.repo.MarkVideoWatched(videoID)
	if err != nil {
		return false, err
	}
	n.setWatchedFlag(videoID, true)
	return changed, nil
}

// MarkUnwatched transitions a video back to unwatched. Idempotent on
// counters: the repository conditions the decrement on the prior state.
func (n *Navigator) MarkUnwatched(videoID int) (changed bool, err error) {
	n.mu.Lock()
	if n.indexOfLocked(videoID) < 0 {
		n.mu.Unlock()
		return false, fmt.Errorf("video %d: %w", videoID, ErrUnknownVideo)
	}
	n.mu.Unlock()

	changed, err = n.repo.MarkVideoUnwatched(videoID)
	if err != nil {
		return false, err
	}
	n.setWatchedFlag(videoID, false)
	return changed, nil
}

func (n *Navigator) setWatchedFlag(videoID int, watched bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if idx := n.indexOfLocked(videoID); idx >= 0 {
		n.videos[idx].IsWatched = watched
	}
}

// indexOfLocked returns the position of videoID in the ordered list, -1 when
// absent or zero. Caller must hold n.mu.
func (n *Navigator) indexOfLocked(videoID int) int {
	if videoID <= 0 {
		return -1
	}
	for i, v := range n.videos {
		if v.ID == videoID {
			return i
		}
	}
	return -1
}
