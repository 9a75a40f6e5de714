package database

import (
	"github.com/luhambo/maintenance/internal/common/config"

	"gorm.io/driver/postgres"
)

// Postgres implements the Database interface using PostgreSQL
type Postgres struct {
	*store
}

// NewPostgres creates a new PostgreSQL instance
func NewPostgres(cfg *config.DatabaseConfig, opts ...Option) (Database, error) {
	s := newStore(cfg, opts...)
	if err := s.open(postgres.Open(cfg.GetDSN())); err != nil {
		return nil, err
	}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &Postgres{store: s}, nil
}
