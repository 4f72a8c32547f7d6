// file: internal/database/backup.go
// version: 1.2.0
// guid: 3d9f5b2e-7a1c-4e6d-9b8f-4c0a2e7d1f5b

package database

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playlistcompanion/playlist-companion/internal/metrics"
)

// backupTimestampLayout produces backup_<yyyy-MM-dd_HH-mm-ss>.<ext> names.
const backupTimestampLayout = "2006-01-02_15-04-05"

// Backup copies the live database file to a timestamped sibling file and
// returns its path. It runs under the store lock, so no statement can touch
// the file mid-copy. The source is left untouched whether the copy succeeds
// or fails; failure is reported as a BackupError.
func (s *Store) Backup() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.backupLocked()
	metrics.IncBackup("backup", err)
	return path, err
}

func (s *Store) backupLocked() (string, error) {
	if _, err := os.Stat(s.path); err != nil {
		return "", &BackupError{Err: fmt.Errorf("source database file: %w", err)}
	}
	base := "backup_" + time.Now().Format(backupTimestampLayout)
	ext := filepath.Ext(s.path)
	dest := filepath.Join(filepath.Dir(s.path), base+ext)
	// Timestamps have second resolution; never overwrite an earlier backup
	// taken in the same second.
	for n := 2; ; n++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(filepath.Dir(s.path), fmt.Sprintf("%s_%d%s", base, n, ext))
	}
	if err := copyFileAtomic(s.path, dest); err != nil {
		return "", &BackupError{Err: err}
	}
	log.Printf("[store] db backup created at %s", dest)
	return dest, nil
}

// Restore overwrites the live database file with the archive's contents.
// The pre-restore state is backed up first, unconditionally, so it is never
// unrecoverable. The live file is replaced by a rename of a fully written
// temp file; on any failure the live file is left unchanged and the
// connection reopened on it. Failure is reported as a RestoreError.
func (s *Store) Restore(archivePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.restoreLocked(archivePath)
	metrics.IncBackup("restore", err)
	return err
}

func (s *Store) restoreLocked(archivePath string) error {
	// The pre-restore backup comes before everything else, even archive
	// validation: the current state must be on disk no matter how the rest
	// of the restore goes.
	if _, err := s.backupLocked(); err != nil {
		return &RestoreError{Err: err}
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return &RestoreError{Err: fmt.Errorf("archive file: %w", err)}
	}
	f.Close()

	// The connection holds the old inode; close it before the file swap and
	// reopen afterwards no matter how the swap went.
	wasOpen := s.db != nil
	if wasOpen {
		if err := s.closeLocked(); err != nil {
			return &RestoreError{Err: fmt.Errorf("closing live connection: %w", err)}
		}
	}

	copyErr := copyFileAtomic(archivePath, s.path)

	if wasOpen {
		if openErr := s.openLocked(); openErr != nil {
			if copyErr != nil {
				return &RestoreError{Err: fmt.Errorf("%v; reopen also failed: %w", copyErr, openErr)}
			}
			return &RestoreError{Err: fmt.Errorf("reopening restored database: %w", openErr)}
		}
	}
	if copyErr != nil {
		return &RestoreError{Err: copyErr}
	}
	log.Printf("[store] db restored from %s", archivePath)
	return nil
}

// copyFileAtomic copies src to dest via a temp file in dest's directory
// followed by a rename, so dest is never observable half-written.
func copyFileAtomic(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to copy contents: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace destination: %w", err)
	}
	return nil
}
