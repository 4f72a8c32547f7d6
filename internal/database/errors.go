// file: internal/database/errors.go
// version: 1.0.0
// guid: 5e2a8f1c-9b3d-4e7a-8c6f-1d0b4a9e2c7f

package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced playlist, video, player or
// settings row does not exist. Callers decide whether to retry or prompt.
var ErrNotFound = errors.New("not found")

// ErrNotOpen is returned when an operation is attempted on a store whose
// underlying connection has not been opened or has been closed.
var ErrNotOpen = errors.New("store is not open")

// QueryError reports a single failed statement. The statement text and the
// underlying driver error are preserved so the failure is never silently
// collapsed into a default value.
type QueryError struct {
	Stmt string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %s: %v", e.Stmt, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// BackupError reports a failed database file backup. The live database file
// is guaranteed untouched when this error is returned.
type BackupError struct {
	Err error
}

func (e *BackupError) Error() string { return fmt.Sprintf("backup failed: %v", e.Err) }

func (e *BackupError) Unwrap() error { return e.Err }

// RestoreError reports a failed database file restore. The live database
// file is guaranteed unchanged when this error is returned.
type RestoreError struct {
	Err error
}

func (e *RestoreError) Error() string { return fmt.Sprintf("restore failed: %v", e.Err) }

func (e *RestoreError) Unwrap() error { return e.Err }
