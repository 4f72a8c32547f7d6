// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabasePath    string        // sqlite file, created on first run
	ListenAddr      string        // HTTP API bind address
	WatchEnabled    bool          // rescan playlist folders on filesystem changes
	WatchDebounce   time.Duration // settle period before a rescan fires
	PlayerOverride  string        // executable path that bypasses the stored default
	RefreshOnStart  bool          // re-probe the media player catalog at startup
	ScanProgressBar bool          // show a spinner during CLI scans
}

var AppConfig Config

// InitConfig reads viper (flags, env, config file already bound by the CLI)
// into AppConfig, applying defaults for anything unset.
func InitConfig() {
	viper.SetDefault("database_path", defaultDatabasePath())
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("watch_enabled", false)
	viper.SetDefault("watch_debounce_seconds", 5)
	viper.SetDefault("refresh_players_on_start", true)
	viper.SetDefault("scan_progress_bar", true)

	AppConfig = Config{
		DatabasePath:    viper.GetString("database_path"),
		ListenAddr:      viper.GetString("listen_addr"),
		WatchEnabled:    viper.GetBool("watch_enabled"),
		WatchDebounce:   time.Duration(viper.GetInt("watch_debounce_seconds")) * time.Second,
		PlayerOverride:  viper.GetString("player_override"),
		RefreshOnStart:  viper.GetBool("refresh_players_on_start"),
		ScanProgressBar: viper.GetBool("scan_progress_bar"),
	}

	if AppConfig.WatchDebounce <= 0 {
		AppConfig.WatchDebounce = 5 * time.Second
	}
}

// defaultDatabasePath places the database under the user config directory,
// falling back to the working directory when that cannot be resolved.
func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "playlist-companion.sqlite"
	}
	return filepath.Join(dir, "playlist-companion", "playlist-companion.sqlite")
}
