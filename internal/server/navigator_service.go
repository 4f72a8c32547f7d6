// file: internal/server/navigator_service.go
// version: 1.1.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/navigator"
)

// loadPlaylist loads a playlist's videos into the navigator and restores the
// last-watched position when it still belongs to that playlist.
func (s *Server) loadPlaylist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := s.store.GetPlaylistByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			RespondWithNotFound(c, "playlist", strconv.Itoa(id))
			return
		}
		RespondWithInternalError(c, "failed to get playlist: "+err.Error())
		return
	}
	if err := s.nav.LoadPlaylist(id); err != nil {
		RespondWithInternalError(c, "failed to load playlist: "+err.Error())
		return
	}
	current, hasCurrent := s.nav.Current()
	resp := gin.H{
		"playlistId": id,
		"videoCount": len(s.nav.Videos()),
	}
	if hasCurrent {
		resp["current"] = current
	}
	c.JSON(http.StatusOK, resp)
}

// currentVideo returns the navigator's current selection, if any.
func (s *Server) currentVideo(c *gin.Context) {
	current, ok := s.nav.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"current": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"current": current})
}

// nextVideo advances the selection. Boundary conditions come back as 200
// responses with a condition field; they are expected states, not failures.
func (s *Server) nextVideo(c *gin.Context) {
	video, err := s.nav.Next()
	if err != nil {
		s.respondNavigation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current": video})
}

// previousVideo moves the selection back.
func (s *Server) previousVideo(c *gin.Context) {
	video, err := s.nav.Previous()
	if err != nil {
		s.respondNavigation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current": video})
}

// selectVideo makes videoId the current selection.
func (s *Server) selectVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}
	if err := s.nav.Select(videoID); err != nil {
		if errors.Is(err, navigator.ErrUnknownVideo) {
			RespondWithNotFound(c, "video", strconv.Itoa(videoID))
			return
		}
		RespondWithInternalError(c, "failed to select video: "+err.Error())
		return
	}
	current, _ := s.nav.Current()
	c.JSON(http.StatusOK, gin.H{"current": current})
}

// playCurrent launches the configured media player on the current video.
func (s *Server) playCurrent(c *gin.Context) {
	current, ok := s.nav.Current()
	if !ok {
		RespondWithConflict(c, "no video is currently selected")
		return
	}
	playerPath, err := s.settings.DefaultPlayerPath()
	if err != nil {
		RespondWithInternalError(c, "failed to read settings: "+err.Error())
		return
	}
	if playerPath == "" {
		RespondWithConflict(c, "no default media player configured")
		return
	}
	if err := s.launchPlayer(playerPath, current.Path); err != nil {
		RespondWithInternalError(c, "failed to launch player: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"playing": current,
		"player":  playerPath,
	})
}

// markWatched flips a video to watched and resyncs its playlist counter.
func (s *Server) markWatched(c *gin.Context) {
	s.setWatched(c, true)
}

// markUnwatched flips a video back to unwatched.
func (s *Server) markUnwatched(c *gin.Context) {
	s.setWatched(c, false)
}

func (s *Server) setWatched(c *gin.Context, watched bool) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	var changed bool
	var err error
	// Route through the navigator when the video is in the loaded playlist so
	// its in-memory flags stay in sync with the database.
	if s.nav != nil && s.navHasVideo(videoID) {
		if watched {
			changed, err = s.nav.MarkWatched(videoID)
		} else {
			changed, err = s.nav.MarkUnwatched(videoID)
		}
	} else {
		if watched {
			changed, err = s.store.MarkVideoWatched(videoID)
		} else {
			changed, err = s.store.MarkVideoUnwatched(videoID)
		}
	}
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			RespondWithNotFound(c, "video", strconv.Itoa(videoID))
			return
		}
		RespondWithInternalError(c, "failed to update watch state: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"videoId": videoID,
		"watched": watched,
		"changed": changed,
	})
}

func (s *Server) navHasVideo(videoID int) bool {
	for _, v := range s.nav.Videos() {
		if v.ID == videoID {
			return true
		}
	}
	return false
}

// respondNavigation maps navigator boundary signals to 200 responses carrying
// a condition name, and anything else to a 500.
func (s *Server) respondNavigation(c *gin.Context, err error) {
	var condition string
	switch {
	case errors.Is(err, navigator.ErrEmptyPlaylist):
		condition = "empty_playlist"
	case errors.Is(err, navigator.ErrEndOfPlaylist):
		condition = "end_of_playlist"
	case errors.Is(err, navigator.ErrStartOfPlaylist):
		condition = "start_of_playlist"
	default:
		RespondWithInternalError(c, "navigation failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"condition": condition,
		"message":   err.Error(),
	})
}
