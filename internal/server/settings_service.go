// file: internal/server/settings_service.go
// version: 1.1.0
// guid: 8a9b0c1d-2e3f-4a5b-6c7d-8e9f0a1b2c3d

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/settings"
)

// getSettings returns the General singleton row.
func (s *Server) getSettings(c *gin.Context) {
	gs, err := s.store.GeneralSettings()
	if err != nil {
		RespondWithInternalError(c, "failed to read settings: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gs)
}

// setDefaultPlayer resolves a player name against the known-player table and
// stores the resolved executable path.
func (s *Server) setDefaultPlayer(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithBadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := s.settings.SetDefaultPlayer(req.Name); err != nil {
		if errors.Is(err, settings.ErrUnknownPlayer) {
			RespondWithNotFound(c, "media player", req.Name)
			return
		}
		RespondWithInternalError(c, "failed to set default player: "+err.Error())
		return
	}
	gs, err := s.store.GeneralSettings()
	if err != nil {
		RespondWithInternalError(c, "failed to read settings: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gs)
}

// listPlayers returns the players found by the last refresh.
func (s *Server) listPlayers(c *gin.Context) {
	players, err := s.settings.KnownPlayers()
	if err != nil {
		RespondWithInternalError(c, "failed to list players: "+err.Error())
		return
	}
	if players == nil {
		players = []database.MediaPlayerEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"players": players,
		"count":   len(players),
	})
}

// refreshPlayers re-probes the filesystem for known players and replaces the
// table with what is actually installed.
func (s *Server) refreshPlayers(c *gin.Context) {
	kept, err := s.settings.RefreshKnownPlayers(settings.DefaultPlayerCandidates())
	if err != nil {
		RespondWithInternalError(c, "failed to refresh players: "+err.Error())
		return
	}
	if kept == nil {
		kept = []database.MediaPlayerEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"players": kept,
		"count":   len(kept),
	})
}

// createBackup copies the live database to a timestamped sibling file.
func (s *Server) createBackup(c *gin.Context) {
	path, err := s.settings.CreateBackup()
	if err != nil {
		RespondWithInternalError(c, "backup failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"backup": path})
}

// restoreBackup replaces the live database with an archive, backing up the
// current state first.
func (s *Server) restoreBackup(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithBadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := s.settings.RestoreBackup(req.Path); err != nil {
		var restoreErr *database.RestoreError
		if errors.As(err, &restoreErr) {
			RespondWithBadRequest(c, "restore failed: "+err.Error())
			return
		}
		RespondWithInternalError(c, "restore failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": req.Path})
}
