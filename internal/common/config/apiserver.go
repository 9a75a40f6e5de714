package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/luhambo/maintenance/internal/common/cnst"
)

type (
	APIServerConfig struct {
		Server   ServerConfig   `yaml:"server"`
		Database DatabaseConfig `yaml:"database"`
		Logger   LoggerConfig   `yaml:"logger"`
		I18n     I18nConfig     `yaml:"i18n"`
		Metrics  MetricsConfig  `yaml:"metrics"`
		Tracing  TracingConfig  `yaml:"tracing"`
		Seed     SeedConfig     `yaml:"seed"`
		Portal   PortalConfig   `yaml:"portal"`
	}

	ServerConfig struct {
		Port            int           `yaml:"port"`
		BasePath        string        `yaml:"base_path"`
		StaticDir       string        `yaml:"static_dir"`
		UploadDir       string        `yaml:"upload_dir"`
		MaxUploadSize   int64         `yaml:"max_upload_size"` // bytes
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	}

	// I18nConfig represents the internationalization configuration
	I18nConfig struct {
		Path        string `yaml:"path"` // Path to extra translation files, embedded catalogue is always loaded
		DefaultLang string `yaml:"default_lang"`
	}

	DatabaseConfig struct {
		Type     string `yaml:"type"`     // sqlite, sqlite3, mysql, postgres
		Host     string `yaml:"host"`     // localhost
		Port     int    `yaml:"port"`     // 3306 (for mysql), 5432 (for postgres)
		User     string `yaml:"user"`     // root (for mysql), postgres (for postgres)
		Password string `yaml:"password"` // password
		DBName   string `yaml:"dbname"`   // database name, file path for sqlite
		SSLMode  string `yaml:"sslmode"`  // disable (for postgres)
	}

	MetricsConfig struct {
		Enabled   bool      `yaml:"enabled"`
		Path      string    `yaml:"path"`
		Namespace string    `yaml:"namespace"`
		Buckets   []float64 `yaml:"buckets"`
	}

	TracingConfig struct {
		Enabled      bool              `yaml:"enabled"`
		ServiceName  string            `yaml:"service_name"`
		Protocol     string            `yaml:"protocol"` // grpc or http
		Endpoint     string            `yaml:"endpoint"`
		Insecure     bool              `yaml:"insecure"`
		SamplerRatio float64           `yaml:"sampler_ratio"`
		Environment  string            `yaml:"environment"`
		Headers      map[string]string `yaml:"headers"`
	}

	// PortalConfig controls the server-rendered portal mounted at "/"
	PortalConfig struct {
		Enabled  bool   `yaml:"enabled"`
		APIURL   string `yaml:"api_url"`   // defaults to this server's base path on loopback
		TimeZone string `yaml:"time_zone"` // zone dates are shown in, local time when empty
	}

	// SeedConfig describes the rows created on first boot when absent
	SeedConfig struct {
		Admin   SeedAdminConfig   `yaml:"admin"`
		Student SeedStudentConfig `yaml:"student"`
	}

	SeedAdminConfig struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
	}

	SeedStudentConfig struct {
		StudentNo    string `yaml:"student_no"`
		FullName     string `yaml:"full_name"`
		Email        string `yaml:"email"`
		Password     string `yaml:"password"`
		BuildingName string `yaml:"building_name"`
		RoomNumber   string `yaml:"room_number"`
		Floor        string `yaml:"floor"`
	}
)

// DefaultSeed returns the accounts created when the configuration names none
func DefaultSeed() SeedConfig {
	return SeedConfig{
		Admin: SeedAdminConfig{
			Username: "admin",
			Email:    "admin@luhambo.co.za",
			Password: "admin123",
			FullName: "System Administrator",
		},
		Student: SeedStudentConfig{
			StudentNo:    "2024001",
			FullName:     "Sample Student",
			Email:        "student@example.com",
			Password:     "student123",
			BuildingName: "Building A",
			RoomNumber:   "101",
			Floor:        "First Floor",
		},
	}
}

// Default returns a configuration with every default applied
func Default() *APIServerConfig {
	c := &APIServerConfig{}
	c.applyDefaults()
	return c
}

func (c *APIServerConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/api"
	}
	if c.Server.UploadDir == "" {
		c.Server.UploadDir = "./uploads"
	}
	if c.Server.MaxUploadSize <= 0 {
		c.Server.MaxUploadSize = 5 << 20
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite"
	}
	if c.Database.DBName == "" && isSQLite(c.Database.Type) {
		c.Database.DBName = "./data/luhambo.db"
	}
	if c.I18n.DefaultLang == "" {
		c.I18n.DefaultLang = "en"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = cnst.AppName
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "luhambo-apiserver"
	}
	if c.Portal.APIURL == "" {
		c.Portal.APIURL = fmt.Sprintf("http://127.0.0.1:%d%s", c.Server.Port, c.Server.BasePath)
	}
	def := DefaultSeed()
	if c.Seed.Admin.Username == "" {
		c.Seed.Admin = def.Admin
	}
	if c.Seed.Student.StudentNo == "" {
		c.Seed.Student = def.Student
	}
}

func isSQLite(t string) bool {
	return t == "sqlite" || t == "sqlite3"
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return c.getPostgresDSN()
	case "mysql":
		return c.getMySQLDSN()
	case "sqlite", "sqlite3":
		if c.DBName == ":memory:" {
			return c.DBName
		}
		// Ensure the directory for the SQLite database exists.
		if err := os.MkdirAll(filepath.Dir(c.DBName), 0755); err != nil {
			panic(fmt.Errorf("failed to create directory for sqlite database: %w", err))
		}
		return c.DBName // For SQLite, DBName is the file path
	default:
		return ""
	}
}

// getPostgresDSN returns PostgreSQL connection string
func (c *DatabaseConfig) getPostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getMySQLDSN returns MySQL connection string
func (c *DatabaseConfig) getMySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}
