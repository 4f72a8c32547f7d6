// file: internal/server/playlist_service.go
// version: 1.2.0
// guid: 6e7f8a9b-0c1d-2e3f-4a5b-6c7d8e9f0a1b

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/scanner"
)

// createPlaylistRequest is the body for POST /playlists. When VideoPaths is
// empty the directory at Path is scanned for video files instead.
type createPlaylistRequest struct {
	Title         string   `json:"title" binding:"required"`
	Path          string   `json:"path" binding:"required"`
	Status        string   `json:"status"`
	TotalTimeHour int      `json:"totalTimeHour"`
	VideoPaths    []string `json:"videoPaths"`
}

// listPlaylists returns all playlists ordered by id.
func (s *Server) listPlaylists(c *gin.Context) {
	playlists, err := s.store.ListPlaylists()
	if err != nil {
		RespondWithInternalError(c, "failed to list playlists: "+err.Error())
		return
	}
	if playlists == nil {
		playlists = []database.Playlist{}
	}
	c.JSON(http.StatusOK, gin.H{
		"playlists": playlists,
		"count":     len(playlists),
	})
}

// createPlaylist creates a playlist and imports its videos in one
// transaction; a failed import leaves no playlist row behind.
func (s *Server) createPlaylist(c *gin.Context) {
	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithBadRequest(c, "invalid request: "+err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = database.StatusPlanned
	}
	if status != database.StatusPlanned && status != database.StatusWatching && status != database.StatusCompleted {
		RespondWithBadRequest(c, "invalid status: "+status)
		return
	}

	videoPaths := req.VideoPaths
	if len(videoPaths) == 0 {
		scanned, err := scanner.ScanDirectory(req.Path)
		if err != nil {
			RespondWithBadRequest(c, "failed to scan "+req.Path+": "+err.Error())
			return
		}
		videoPaths = scanned
	}

	pl := &database.Playlist{
		Title:         req.Title,
		Path:          req.Path,
		Status:        status,
		TotalTimeHour: req.TotalTimeHour,
	}
	created, err := s.store.CreatePlaylist(pl, videoPaths)
	if err != nil {
		RespondWithInternalError(c, "failed to create playlist: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getPlaylist returns a single playlist by id.
func (s *Server) getPlaylist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pl, err := s.store.GetPlaylistByID(id)
	if errors.Is(err, database.ErrNotFound) {
		RespondWithNotFound(c, "playlist", strconv.Itoa(id))
		return
	}
	if err != nil {
		RespondWithInternalError(c, "failed to get playlist: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, pl)
}

// updatePlaylist overwrites the mutable playlist fields.
func (s *Server) updatePlaylist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var upd database.PlaylistUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		RespondWithBadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := s.store.UpdatePlaylist(id, upd); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			RespondWithNotFound(c, "playlist", strconv.Itoa(id))
			return
		}
		RespondWithInternalError(c, "failed to update playlist: "+err.Error())
		return
	}
	pl, err := s.store.GetPlaylistByID(id)
	if err != nil {
		RespondWithInternalError(c, "failed to reload playlist: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, pl)
}

// deletePlaylist removes a playlist and all its videos.
func (s *Server) deletePlaylist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeletePlaylist(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			RespondWithNotFound(c, "playlist", strconv.Itoa(id))
			return
		}
		RespondWithInternalError(c, "failed to delete playlist: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// listVideos returns a playlist's videos in insertion order.
func (s *Server) listVideos(c *gin.Context) {
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
	videos, err := s.store.LoadVideos(id)
	if err != nil {
		RespondWithInternalError(c, "failed to load videos: "+err.Error())
		return
	}
	if videos == nil {
		videos = []database.Video{}
	}
	c.JSON(http.StatusOK, gin.H{
		"videos": videos,
		"count":  len(videos),
	})
}
