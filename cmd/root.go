// file: cmd/root.go
// version: 2.2.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/playlistcompanion/playlist-companion/internal/config"
	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/metrics"
	"github.com/playlistcompanion/playlist-companion/internal/navigator"
	"github.com/playlistcompanion/playlist-companion/internal/player"
	"github.com/playlistcompanion/playlist-companion/internal/scanner"
	"github.com/playlistcompanion/playlist-companion/internal/server"
	"github.com/playlistcompanion/playlist-companion/internal/settings"
	"github.com/playlistcompanion/playlist-companion/internal/sysinfo"
	"github.com/playlistcompanion/playlist-companion/internal/watcher"
)

var cfgFile string
var databasePath string
var listenAddr string
var watchEnabled bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playlist-companion",
	Short: "Track watch progress across local video playlists",
	Long: `Playlist Companion keeps a local catalog of video playlists backed by
folders on disk, tracks which videos you have watched, remembers where you
left off, and hands the current video to your media player of choice.`,
}

// openStore opens the database, runs the schema guard and seeds the player
// catalog on first run. Metrics are registered here so the store counters
// are live for every entry point, not just serve.
func openStore() (*database.Store, error) {
	metrics.Register()
	store := database.New(config.AppConfig.DatabasePath)
	if err := store.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	firstRun, err := store.EnsureSchema(sysinfo.OSLabel())
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}
	if firstRun {
		fmt.Println("First run: created database at", store.Path())
	}
	if firstRun || config.AppConfig.RefreshOnStart {
		facade := settings.New(store)
		if kept, err := facade.RefreshKnownPlayers(settings.DefaultPlayerCandidates()); err != nil {
			fmt.Printf("Warning: could not refresh media players: %v\n", err)
		} else {
			fmt.Printf("Found %d installed media players\n", len(kept))
		}
	}
	return store, nil
}

// addCmd creates a playlist from a directory of video files.
var addCmd = &cobra.Command{
	Use:   "add <title> <directory>",
	Short: "Create a playlist from a directory of videos",
	Long:  `Scan a directory recursively for video files and create a playlist from them.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		title, dir := args[0], args[1]
		fmt.Printf("Scanning directory: %s\n", dir)

		var videos []string
		if config.AppConfig.ScanProgressBar {
			videos, err = scanner.ScanDirectoryWithProgress(dir)
		} else {
			videos, err = scanner.ScanDirectory(dir)
		}
		if err != nil {
			return fmt.Errorf("scan error: %w", err)
		}
		fmt.Printf("Found %d videos\n", len(videos))

		created, err := store.CreatePlaylist(&database.Playlist{
			Title:  title,
			Path:   dir,
			Status: database.StatusPlanned,
		}, videos)
		if err != nil {
			return fmt.Errorf("failed to create playlist: %w", err)
		}
		fmt.Printf("Created playlist %d: %s (%d videos)\n", created.ID, created.Title, created.TotalVideoCount)
		return nil
	},
}

// listCmd prints all playlists with their watch progress.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List playlists and watch progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		playlists, err := store.ListPlaylists()
		if err != nil {
			return fmt.Errorf("failed to list playlists: %w", err)
		}
		if len(playlists) == 0 {
			fmt.Println("No playlists yet. Create one with: playlist-companion add <title> <directory>")
			return nil
		}
		for _, pl := range playlists {
			fmt.Printf("%4d  %-30s %-10s %3d/%-3d  %s\n",
				pl.ID, pl.Title, pl.Status, pl.WatchedCount, pl.TotalVideoCount, pl.Path)
		}
		return nil
	},
}

// playCmd resumes a playlist in the default media player.
var playCmd = &cobra.Command{
	Use:   "play <playlist-id>",
	Short: "Resume a playlist in your media player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var playlistID int
		if _, err := fmt.Sscanf(args[0], "%d", &playlistID); err != nil {
			return fmt.Errorf("invalid playlist id %q", args[0])
		}

		nav := navigator.New(store)
		if err := nav.LoadPlaylist(playlistID); err != nil {
			return fmt.Errorf("failed to load playlist: %w", err)
		}
		current, ok := nav.Current()
		if !ok {
			// Nothing watched yet: start from the first video.
			video, err := nav.Next()
			if err != nil {
				return fmt.Errorf("cannot start playback: %w", err)
			}
			current = video
		}

		playerPath := config.AppConfig.PlayerOverride
		if playerPath == "" {
			facade := settings.New(store)
			playerPath, err = facade.DefaultPlayerPath()
			if err != nil {
				return err
			}
		}
		if err := player.Launch(playerPath, current.Path); err != nil {
			return err
		}
		fmt.Printf("Playing %s\n", current.Path)
		return nil
	},
}

// backupCmd snapshots the database file.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the database to a timestamped file",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		path, err := store.Backup()
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("Backup written to %s\n", path)
		return nil
	},
}

// restoreCmd replaces the database with an earlier backup.
var restoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Restore the database from a backup file",
	Long: `Restore the database from a backup file. The current database is backed
up first, so a restore never destroys state irrecoverably.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Restore(args[0]); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		fmt.Printf("Restored database from %s\n", args[0])
		return nil
	},
}

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		nav := navigator.New(store)
		facade := settings.New(store)

		// Optionally rescan playlist folders when their contents change and
		// report how far the playlist has drifted from the files on disk.
		if config.AppConfig.WatchEnabled {
			playlists, err := store.ListPlaylists()
			if err != nil {
				return fmt.Errorf("failed to list playlists: %w", err)
			}
			for _, pl := range playlists {
				w := watcher.New(func(rootDir string) {
					paths, err := scanner.ScanDirectory(rootDir)
					if err != nil {
						log.Printf("[watch] rescan of %s failed: %v", rootDir, err)
						return
					}
					known, err := store.LoadVideos(pl.ID)
					if err != nil {
						log.Printf("[watch] could not load videos for playlist %d: %v", pl.ID, err)
						return
					}
					added, missing := playlistDrift(known, paths)
					log.Printf("[watch] playlist %d (%s): %d videos on disk, %d new, %d missing",
						pl.ID, pl.Title, len(paths), added, missing)
				}, config.AppConfig.WatchDebounce)
				if err := w.Start(pl.Path); err != nil {
					fmt.Printf("Warning: cannot watch %s: %v\n", pl.Path, err)
					continue
				}
				defer w.Stop()
			}
		}

		srv := server.NewServer(store, nav, facade, player.Launch)
		cfg := server.ServerConfig{
			Addr:         config.AppConfig.ListenAddr,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		return srv.Start(cfg)
	},
}

// playlistDrift compares a playlist's known videos against the paths found
// on disk and returns how many on-disk files are not yet in the playlist and
// how many known videos no longer exist.
func playlistDrift(known []database.Video, onDisk []string) (added, missing int) {
	present := make(map[string]bool, len(onDisk))
	for _, p := range onDisk {
		present[p] = true
	}
	tracked := make(map[string]bool, len(known))
	for _, v := range known {
		tracked[v.Path] = true
		if !present[v.Path] {
			missing++
		}
	}
	for _, p := range onDisk {
		if !tracked[p] {
			added++
		}
	}
	return added, missing
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.playlist-companion.yaml)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "path to the sqlite database file")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", ":8080", "HTTP listen address for serve")
	rootCmd.PersistentFlags().BoolVar(&watchEnabled, "watch", false, "rescan playlist folders on filesystem changes")

	viper.BindPFlag("database_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("listen_addr", rootCmd.PersistentFlags().Lookup("listen"))
	viper.BindPFlag("watch_enabled", rootCmd.PersistentFlags().Lookup("watch"))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".playlist-companion")
	}

	viper.SetEnvPrefix("PLAYLIST_COMPANION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()

	// Ensure the database directory exists before sqlite tries to create the file.
	if dbDir := filepath.Dir(config.AppConfig.DatabasePath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			fmt.Printf("Error creating database directory: %v\n", err)
		}
	}
}
