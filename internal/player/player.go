// file: internal/player/player.go
// version: 1.0.0
// guid: 9c5a1e8d-4f2b-4d7c-a9e6-3b8f0d5c2a7e

package player

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
)

// ErrNoPlayer is returned when no default media player has been configured.
var ErrNoPlayer = errors.New("no default media player configured")

// Launch starts the player executable with the video path as its sole
// argument. The path is passed directly to the process, never through a
// shell, so no characters need escaping. A start failure is reported to the
// caller; waiting for the player to exit is not part of the contract, so the
// process is released immediately after a successful start.
func Launch(playerPath, videoPath string) error {
	if playerPath == "" {
		return ErrNoPlayer
	}
	cmd := exec.Command(playerPath, videoPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start media player %s: %w", playerPath, err)
	}
	log.Printf("[player] playing %s with %s", videoPath, playerPath)
	return cmd.Process.Release()
}
