// file: internal/database/store.go
// version: 1.3.0
// guid: 2a9e4c7d-8b1f-4e5a-9c3d-6f2b0a8e4d7c

package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/playlistcompanion/playlist-companion/internal/metrics"
)

// Store is the single serialized entry point to the SQLite database. It owns
// the one connection handle for the whole process; every statement,
// transaction, and file-level operation runs under the same mutex, so
// concurrent callers queue rather than race. Construct one Store at the
// composition root and pass it by reference to every component that needs it.
type Store struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// New creates a Store for the database file at path. The connection is not
// opened until Open is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the live database file path.
func (s *Store) Path() string { return s.path }

// Open opens the underlying connection. It is idempotent: calling Open on an
// already-open store returns nil without reopening.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}
	return s.openLocked()
}

// openLocked opens the sql.DB handle. Caller must hold s.mu.
func (s *Store) openLocked() error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	// One logical connection: the mutex is the serialization point, the pool
	// must never hand out a second handle behind it.
	db.SetMaxOpenConns(1)
	s.db = db
	log.Printf("[store] opened %s", s.path)
	return nil
}

// Close closes the connection. Safe to call on a store that was never opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Store) closeLocked() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// exec runs a single statement under the store lock.
func (s *Store) exec(stmt string, args ...interface{}) (sql.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	res, err := s.db.Exec(stmt, args...)
	if err != nil {
		return nil, s.queryFailed(stmt, err)
	}
	metrics.IncQueryOK()
	return res, nil
}

// withTx runs fn inside a transaction under the store lock. A non-nil error
// from fn rolls the transaction back; otherwise it is committed. Either every
// statement's effect is visible afterwards or none is.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrNotOpen
	}
	tx, err := s.db.Begin()
	if err != nil {
		return s.queryFailed("BEGIN", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return s.queryFailed("COMMIT", err)
	}
	metrics.IncQueryOK()
	return nil
}

// queryFailed logs a failed statement with its underlying message and wraps
// it in a QueryError. Failures surface to the caller, never a default value.
func (s *Store) queryFailed(stmt string, err error) error {
	metrics.IncQueryFailed()
	qerr := &QueryError{Stmt: stmt, Err: err}
	log.Printf("[store] %v", qerr)
	return qerr
}

// txFailed mirrors queryFailed for statements inside a transaction, tagging
// the statement so rolled-back failures are distinguishable in the log.
func (s *Store) txFailed(stmt string, err error) error {
	return s.queryFailed("tx: "+stmt, err)
}
