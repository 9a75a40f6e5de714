package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN_Postgres(t *testing.T) {
	c := &DatabaseConfig{Type: "postgres", Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	got := c.GetDSN()
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", got)
}

func TestDatabaseConfig_GetDSN_MySQL(t *testing.T) {
	c := &DatabaseConfig{Type: "mysql", Host: "h", Port: 3306, User: "u", Password: "p", DBName: "d"}
	got := c.GetDSN()
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=UTC", got)
}

func TestDatabaseConfig_GetDSN_SQLite(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "data", "luhambo.db")
	for _, typ := range []string{"sqlite", "sqlite3"} {
		c := &DatabaseConfig{Type: typ, DBName: dbPath}
		assert.Equal(t, dbPath, c.GetDSN())
	}
	// Directory for sqlite DB should be created
	_, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestDatabaseConfig_GetDSN_Memory(t *testing.T) {
	c := &DatabaseConfig{Type: "sqlite", DBName: ":memory:"}
	assert.Equal(t, ":memory:", c.GetDSN())
}

func TestDatabaseConfig_GetDSN_Unknown(t *testing.T) {
	c := &DatabaseConfig{Type: "unknown"}
	assert.Equal(t, "", c.GetDSN())
}

func TestApplyDefaults(t *testing.T) {
	var c APIServerConfig
	c.applyDefaults()

	assert.Equal(t, 3000, c.Server.Port)
	assert.Equal(t, "/api", c.Server.BasePath)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.Equal(t, "./data/luhambo.db", c.Database.DBName)
	assert.Equal(t, "en", c.I18n.DefaultLang)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.Equal(t, "luhambo", c.Metrics.Namespace)
	assert.Equal(t, "http://127.0.0.1:3000/api", c.Portal.APIURL)
	assert.False(t, c.Portal.Enabled)
	assert.Equal(t, DefaultSeed(), c.Seed)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	c := APIServerConfig{
		Server:   ServerConfig{Port: 8080, BasePath: "/v1"},
		Database: DatabaseConfig{Type: "postgres", DBName: "luhambo"},
		Seed:     SeedConfig{Admin: SeedAdminConfig{Username: "root"}},
	}
	c.applyDefaults()

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "/v1", c.Server.BasePath)
	assert.Equal(t, "http://127.0.0.1:8080/v1", c.Portal.APIURL)
	assert.Equal(t, "luhambo", c.Database.DBName)
	assert.Equal(t, "root", c.Seed.Admin.Username)
	assert.Equal(t, "2024001", c.Seed.Student.StudentNo)
}
