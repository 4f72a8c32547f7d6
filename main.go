// file: main.go
// version: 1.0.0
// guid: 3f1c2a9b-7d4e-4c8a-9b0f-2e5d6a7c8b1d

package main

import (
	"fmt"
	"os"

	"github.com/playlistcompanion/playlist-companion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
