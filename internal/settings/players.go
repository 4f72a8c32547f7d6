// file: internal/settings/players.go
// version: 1.1.0
// guid: 4d8f2b7c-6e1a-4c9d-8b5f-0a3e7c1d9f6b

package settings

import (
	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/sysinfo"
)

// DefaultPlayerCandidates returns the built-in catalog of known media
// players with their usual install path on the current platform. The list is
// a static starting point; RefreshKnownPlayers filters it against the
// filesystem before anything is persisted.
func DefaultPlayerCandidates() []database.MediaPlayerEntry {
	switch sysinfo.OSLabel() {
	case "Windows":
		return []database.MediaPlayerEntry{
			{Name: "VLC", Path: `C:\Program Files\VideoLAN\VLC\vlc.exe`},
			{Name: "MPV", Path: `C:\Program Files\mpv\mpv.exe`},
			{Name: "Windows Media Player (WMP)", Path: `C:\Program Files\Windows Media Player\wmplayer.exe`},
			{Name: "PotPlayer", Path: `C:\Program Files\DAUM\PotPlayer\PotPlayer.exe`},
			{Name: "KMPlayer", Path: `C:\Program Files\KMPlayer\KMPlayer.exe`},
			{Name: "MPlayer", Path: `C:\Program Files\MPlayer\mplayer.exe`},
			{Name: "SM Player", Path: `C:\Program Files\SMPlayer\smplayer.exe`},
			{Name: "Media Player Classic", Path: `C:\Program Files\MPC-HC\mpc-hc64.exe`},
			{Name: "GOM Player", Path: `C:\Program Files\GRETECH\GOM Player\GOM.exe`},
		}
	case "Mac":
		return []database.MediaPlayerEntry{
			{Name: "VLC", Path: "/Applications/VLC.app/Contents/MacOS/VLC"},
			{Name: "MPV", Path: "/opt/homebrew/bin/mpv"},
		}
	default:
		return []database.MediaPlayerEntry{
			{Name: "VLC", Path: "/usr/bin/vlc"},
			{Name: "MPV", Path: "/usr/bin/mpv"},
			{Name: "MPlayer", Path: "/usr/bin/mplayer"},
			{Name: "SM Player", Path: "/usr/bin/smplayer"},
			{Name: "GNOME Videos", Path: "/usr/bin/totem"},
		}
	}
}
