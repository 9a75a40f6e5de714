package database

import "time"

// User represents a registered student
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentNo    string    `json:"studentNo" gorm:"type:varchar(50);not null;uniqueIndex"`
	FullName     string    `json:"fullName" gorm:"type:varchar(100);not null"`
	Email        string    `json:"email" gorm:"type:varchar(100);not null;uniqueIndex"`
	Password     string    `json:"-" gorm:"type:varchar(255);not null"` // plain text, never serialized
	BuildingName string    `json:"buildingName" gorm:"type:varchar(100);not null"`
	RoomNumber   string    `json:"roomNumber" gorm:"type:varchar(20);not null"`
	Floor        string    `json:"floor" gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Admin represents a maintenance administrator
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"type:varchar(100);not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName  string    `json:"fullName" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report is a maintenance issue. Location fields are copied from the
// student at submission time and never re-synced.
type Report struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentID        uint      `json:"studentId" gorm:"not null;index"`
	StudentNo        string    `json:"studentNo" gorm:"type:varchar(50);not null"`
	BuildingName     string    `json:"buildingName" gorm:"type:varchar(100);not null;index"`
	RoomNumber       string    `json:"roomNumber" gorm:"type:varchar(20);not null"`
	Floor            string    `json:"floor" gorm:"type:varchar(50);not null"`
	IssueDescription string    `json:"issueDescription" gorm:"type:text;not null"`
	Category         string    `json:"category" gorm:"type:varchar(50);not null"`
	ImagePath        *string   `json:"imagePath" gorm:"type:varchar(255)"`
	Status           string    `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority         string    `json:"priority" gorm:"type:varchar(20);not null;default:'Normal'"`
	AdminNotes       string    `json:"adminNotes" gorm:"type:text;not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Student *User `json:"-" gorm:"foreignKey:StudentID;references:ID"`
}

// ChatMessage is an immutable message exchanged on a report
type ChatMessage struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ReportID   uint      `json:"reportId" gorm:"not null;index"`
	SenderType string    `json:"senderType" gorm:"type:varchar(20);not null"`
	SenderID   uint      `json:"senderId" gorm:"not null"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt"`

	Report *Report `json:"-" gorm:"foreignKey:ReportID;references:ID"`
}

// ReportView is a report joined with the submitting student's name
type ReportView struct {
	Report
	StudentName string `json:"studentName"`
}

// ReportFilter holds the optional equality filters of the admin report list.
// Empty fields are not constrained.
type ReportFilter struct {
	Status   string `form:"status"`
	Building string `form:"building"`
	Priority string `form:"priority"`
}

// StudentStats counts one student's reports by status
type StudentStats struct {
	TotalReports      int64 `json:"totalReports"`
	PendingReports    int64 `json:"pendingReports"`
	InProgressReports int64 `json:"inProgressReports"`
	CompletedReports  int64 `json:"completedReports"`
}

// AdminStats aggregates over all reports
type AdminStats struct {
	TotalReports      int64 `json:"totalReports"`
	PendingReports    int64 `json:"pendingReports"`
	InProgressReports int64 `json:"inProgressReports"`
	CompletedToday    int64 `json:"completedToday"`
	TotalUsers        int64 `json:"totalUsers"`
}

func allModels() []any {
	return []any{&User{}, &Admin{}, &Report{}, &ChatMessage{}}
}
