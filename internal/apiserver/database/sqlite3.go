package database

import (
	"github.com/luhambo/maintenance/internal/common/config"

	cgosqlite "gorm.io/driver/sqlite"
)

// SQLite3 implements the Database interface on the cgo mattn/go-sqlite3 driver
type SQLite3 struct {
	*store
}

// NewSQLite3 creates a new cgo SQLite instance
func NewSQLite3(cfg *config.DatabaseConfig, opts ...Option) (Database, error) {
	s := newStore(cfg, opts...)
	if err := ensureDBDir(cfg.DBName); err != nil {
		return nil, err
	}
	if err := s.open(cgosqlite.Open(cfg.DBName)); err != nil {
		return nil, err
	}
	if err := s.tuneSQLite(); err != nil {
		return nil, err
	}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &SQLite3{store: s}, nil
}
