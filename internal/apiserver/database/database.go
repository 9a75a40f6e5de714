package database

import (
	"context"
	"errors"
	"time"

	"github.com/luhambo/maintenance/internal/common/config"
)

var (
	// ErrDuplicate is returned when a unique column already holds the value
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned when no row matches a lookup
	ErrNotFound = errors.New("record not found")
)

// Database defines the storage operations of the maintenance service
type Database interface {
	Close() error
	Ping(ctx context.Context) error

	// InitDefaultAccounts creates the seed admin and sample student when absent
	InitDefaultAccounts(ctx context.Context, seed config.SeedConfig) error

	CreateUser(ctx context.Context, user *User) error
	FindStudent(ctx context.Context, identifier, password string) (*User, error)
	FindAdmin(ctx context.Context, username, password string) (*Admin, error)
	ListUsers(ctx context.Context, search string) ([]*User, error)

	CreateReport(ctx context.Context, report *Report) error
	ListStudentReports(ctx context.Context, studentID uint) ([]*Report, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]*ReportView, error)
	UpdateReport(ctx context.Context, id uint, status, priority, adminNotes string) error
	SetReportImage(ctx context.Context, id uint, path string) error

	SaveMessage(ctx context.Context, message *ChatMessage) error
	ListMessages(ctx context.Context, reportID uint) ([]*ChatMessage, error)

	StudentStats(ctx context.Context, studentID uint) (*StudentStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}

// Option customizes a store at construction
type Option func(*store)

// WithClock replaces time.Now as the source of row timestamps and of "today"
func WithClock(now func() time.Time) Option {
	return func(s *store) {
		s.now = now
	}
}
