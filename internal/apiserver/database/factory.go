package database

import (
	"fmt"

	"github.com/luhambo/maintenance/internal/common/config"
)

// NewDatabase creates a new database based on configuration
func NewDatabase(cfg *config.DatabaseConfig, opts ...Option) (Database, error) {
	switch cfg.Type {
	case "postgres":
		return NewPostgres(cfg, opts...)
	case "sqlite":
		return NewSQLite(cfg, opts...)
	case "sqlite3":
		return NewSQLite3(cfg, opts...)
	case "mysql":
		return NewMySQL(cfg, opts...)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}
