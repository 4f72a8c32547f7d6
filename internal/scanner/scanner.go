// file: internal/scanner/scanner.go
// version: 1.1.0
// guid: 5f8a2c6e-9d1b-4e7f-a3c5-8b0d6f2a9e4c

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// videoExtensions is the fixed allow-list of media file extensions.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".ts":   true,
}

// IsVideoFile reports whether path carries one of the allowed extensions.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanDirectory walks rootDir recursively and returns the absolute paths of
// all video files, sorted ascending. Inaccessible subdirectories are skipped.
func ScanDirectory(rootDir string) ([]string, error) {
	return scan(rootDir, nil)
}

// ScanDirectoryWithProgress is ScanDirectory with a terminal spinner, for
// interactive CLI use on large trees.
func ScanDirectoryWithProgress(rootDir string) ([]string, error) {
	bar := progressbar.Default(-1, "scanning")
	defer bar.Finish()
	return scan(rootDir, bar)
}

func scan(rootDir string, bar *progressbar.ProgressBar) ([]string, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			return nil
		}
		if bar != nil {
			bar.Add(1)
		}
		if IsVideoFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
