package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luhambo/maintenance/internal/common/config"

	"github.com/glebarez/sqlite"
)

// SQLite implements the Database interface using the pure Go SQLite driver
type SQLite struct {
	*store
}

// NewSQLite creates a new SQLite instance
func NewSQLite(cfg *config.DatabaseConfig, opts ...Option) (Database, error) {
	s := newStore(cfg, opts...)
	if err := ensureDBDir(cfg.DBName); err != nil {
		return nil, err
	}
	if err := s.open(sqlite.Open(cfg.DBName)); err != nil {
		return nil, err
	}
	if err := s.tuneSQLite(); err != nil {
		return nil, err
	}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &SQLite{store: s}, nil
}

func ensureDBDir(name string) error {
	if name == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// tuneSQLite keeps SQLite on one connection so writers never see SQLITE_BUSY
// and an in-memory database is shared by every query. Foreign keys stay
// unenforced, chat and reports accept dangling ids.
func (s *store) tuneSQLite() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return s.db.Exec("PRAGMA foreign_keys = OFF").Error
}
