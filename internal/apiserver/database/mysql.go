package database

import (
	"github.com/luhambo/maintenance/internal/common/config"

	"gorm.io/driver/mysql"
)

// MySQL implements the Database interface using MySQL
type MySQL struct {
	*store
}

// NewMySQL creates a new MySQL instance
func NewMySQL(cfg *config.DatabaseConfig, opts ...Option) (Database, error) {
	s := newStore(cfg, opts...)
	if err := s.open(mysql.Open(cfg.GetDSN())); err != nil {
		return nil, err
	}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &MySQL{store: s}, nil
}
