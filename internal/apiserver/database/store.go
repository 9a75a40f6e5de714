package database

import (
	"context"
	"fmt"
	"time"

	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/config"

	"gorm.io/gorm"
)

// store holds the gorm implementation shared by every driver
type store struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
	now func() time.Time
}

func newStore(cfg *config.DatabaseConfig, opts ...Option) *store {
	s := &store{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *store) open(dialector gorm.Dialector) error {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		NowFunc:        s.utcNow,
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = gormDB
	return nil
}

func (s *store) migrate() error {
	if err := s.db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (s *store) utcNow() time.Time {
	return s.now().UTC()
}

// Close closes the database connection
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *store) InitDefaultAccounts(ctx context.Context, seed config.SeedConfig) error {
	return initDefaultAccounts(s.db.WithContext(ctx), seed)
}

func (s *store) CreateUser(ctx context.Context, user *User) error {
	return translateError(s.db.WithContext(ctx).Create(user).Error)
}

// FindStudent matches the identifier against both the student number and the email
func (s *store) FindStudent(ctx context.Context, identifier, password string) (*User, error) {
	var users []*User
	err := s.db.WithContext(ctx).
		Where("(student_no = ? OR email = ?) AND password = ?", identifier, identifier, password).
		Limit(1).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users[0], nil
}

func (s *store) FindAdmin(ctx context.Context, username, password string) (*Admin, error) {
	var admins []*Admin
	err := s.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		Limit(1).
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, ErrNotFound
	}
	return admins[0], nil
}

func (s *store) ListUsers(ctx context.Context, search string) ([]*User, error) {
	var users []*User
	q := s.db.WithContext(ctx).Model(&User{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("full_name LIKE ? OR student_no LIKE ?", like, like)
	}
	err := q.Order("created_at DESC").Order("id DESC").Find(&users).Error
	return orEmpty(users), err
}

// CreateReport always starts the report as pending; an empty priority becomes Normal
func (s *store) CreateReport(ctx context.Context, report *Report) error {
	report.Status = cnst.StatusPending
	if report.Priority == "" {
		report.Priority = cnst.PriorityNormal
	}
	return translateError(s.db.WithContext(ctx).Create(report).Error)
}

func (s *store) ListStudentReports(ctx context.Context, studentID uint) ([]*Report, error) {
	var reports []*Report
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reports).Error
	return orEmpty(reports), err
}

// ListReports joins the student's full name; the filters are AND-ed
func (s *store) ListReports(ctx context.Context, filter ReportFilter) ([]*ReportView, error) {
	var reports []*ReportView
	q := s.db.WithContext(ctx).
		Model(&Report{}).
		Select("reports.*, COALESCE(users.full_name, '') AS student_name").
		Joins("LEFT JOIN users ON users.id = reports.student_id")
	if filter.Status != "" {
		q = q.Where("reports.status = ?", filter.Status)
	}
	if filter.Building != "" {
		q = q.Where("reports.building_name = ?", filter.Building)
	}
	if filter.Priority != "" {
		q = q.Where("reports.priority = ?", filter.Priority)
	}
	err := q.Order("reports.created_at DESC").Order("reports.id DESC").Scan(&reports).Error
	return orEmpty(reports), err
}

// UpdateReport overwrites the triage fields in one statement. A missing id is not an error.
func (s *store) UpdateReport(ctx context.Context, id uint, status, priority, adminNotes string) error {
	return s.db.WithContext(ctx).
		Model(&Report{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"priority":    priority,
			"admin_notes": adminNotes,
			"updated_at":  s.utcNow(),
		}).Error
}

func (s *store) SetReportImage(ctx context.Context, id uint, path string) error {
	res := s.db.WithContext(ctx).
		Model(&Report{}).
		Where("id = ?", id).
		Updates(map[string]any{"image_path": path, "updated_at": s.utcNow()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) SaveMessage(ctx context.Context, message *ChatMessage) error {
	return translateError(s.db.WithContext(ctx).Create(message).Error)
}

func (s *store) ListMessages(ctx context.Context, reportID uint) ([]*ChatMessage, error) {
	var messages []*ChatMessage
	err := s.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	return orEmpty(messages), err
}

func (s *store) StudentStats(ctx context.Context, studentID uint) (*StudentStats, error) {
	var stats StudentStats
	err := s.db.WithContext(ctx).
		Model(&Report{}).
		Select(`COUNT(*) AS total_reports,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_reports,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress_reports,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_reports`,
			cnst.StatusPending, cnst.StatusInProgress, cnst.StatusCompleted).
		Where("student_id = ?", studentID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminStats counts completed reports whose update date is today in UTC
func (s *store) AdminStats(ctx context.Context) (*AdminStats, error) {
	today := s.utcNow().Format("2006-01-02")
	var stats AdminStats
	err := s.db.WithContext(ctx).
		Model(&Report{}).
		Select(`COUNT(*) AS total_reports,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_reports,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress_reports,
			COALESCE(SUM(CASE WHEN status = ? AND DATE(updated_at) = ? THEN 1 ELSE 0 END), 0) AS completed_today,
			(SELECT COUNT(*) FROM users) AS total_users`,
			cnst.StatusPending, cnst.StatusInProgress, cnst.StatusCompleted, today).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
