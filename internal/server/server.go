// file: internal/server/server.go
// version: 2.3.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/metrics"
	"github.com/playlistcompanion/playlist-companion/internal/navigator"
	"github.com/playlistcompanion/playlist-companion/internal/server/middleware"
	"github.com/playlistcompanion/playlist-companion/internal/settings"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	store      *database.Store
	nav        *navigator.Navigator
	settings   *settings.Facade

	// launchPlayer is swappable so tests don't spawn processes.
	launchPlayer func(playerPath, videoPath string) error
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer creates a new server instance wired to the given store.
func NewServer(store *database.Store, nav *navigator.Navigator, facade *settings.Facade, launchPlayer func(playerPath, videoPath string) error) *Server {
	router := gin.Default()

	// Set up middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Register metrics (idempotent)
	metrics.Register()

	server := &Server{
		router:       router,
		store:        store,
		nav:          nav,
		settings:     facade,
		launchPlayer: launchPlayer,
	}

	server.setupRoutes()

	return server
}

// Router exposes the gin engine for httptest-based exercising.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Start(cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           cfg.Addr,
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	s.router.GET("/api/health", s.healthCheck)

	api := s.router.Group("/api/v1")
	{
		// Playlist routes
		api.GET("/playlists", s.listPlaylists)
		api.POST("/playlists", s.createPlaylist)
		api.GET("/playlists/:id", s.getPlaylist)
		api.PUT("/playlists/:id", s.updatePlaylist)
		api.DELETE("/playlists/:id", s.deletePlaylist)
		api.GET("/playlists/:id/videos", s.listVideos)

		// Playback navigation routes
		api.POST("/navigator/load/:id", s.loadPlaylist)
		api.GET("/navigator/current", s.currentVideo)
		api.POST("/navigator/next", s.nextVideo)
		api.POST("/navigator/previous", s.previousVideo)
		api.POST("/navigator/select/:videoId", s.selectVideo)
		api.POST("/navigator/play", s.playCurrent)

		// Watch state routes
		api.POST("/videos/:videoId/watched", s.markWatched)
		api.DELETE("/videos/:videoId/watched", s.markUnwatched)

		// Settings routes
		api.GET("/settings", s.getSettings)
		api.PUT("/settings/player", s.setDefaultPlayer)
		api.GET("/settings/players", s.listPlayers)
		api.POST("/settings/players/refresh", s.refreshPlayers)

		// Backup routes
		api.POST("/backup", s.createBackup)
		api.POST("/restore", s.restoreBackup)
	}
}

// healthCheck returns basic liveness plus store state.
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": s.store.Path(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
