package portal

import "time"

// Student is the account returned by the student login
type Student struct {
	ID           uint      `json:"id"`
	StudentNo    string    `json:"studentNo"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	BuildingName string    `json:"buildingName"`
	RoomNumber   string    `json:"roomNumber"`
	Floor        string    `json:"floor"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Admin struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report as listed by the API. StudentName is only set by the admin listing.
type Report struct {
	ID               uint      `json:"id"`
	StudentID        uint      `json:"studentId"`
	StudentNo        string    `json:"studentNo"`
	StudentName      string    `json:"studentName"`
	BuildingName     string    `json:"buildingName"`
	RoomNumber       string    `json:"roomNumber"`
	Floor            string    `json:"floor"`
	IssueDescription string    `json:"issueDescription"`
	Category         string    `json:"category"`
	ImagePath        *string   `json:"imagePath"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	AdminNotes       string    `json:"adminNotes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Message struct {
	ID         uint      `json:"id"`
	ReportID   uint      `json:"reportId"`
	SenderType string    `json:"senderType"`
	SenderID   uint      `json:"senderId"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type StudentStats struct {
	TotalReports      int64 `json:"totalReports"`
	PendingReports    int64 `json:"pendingReports"`
	InProgressReports int64 `json:"inProgressReports"`
	CompletedReports  int64 `json:"completedReports"`
}

type AdminStats struct {
	TotalReports      int64 `json:"totalReports"`
	PendingReports    int64 `json:"pendingReports"`
	InProgressReports int64 `json:"inProgressReports"`
	CompletedToday    int64 `json:"completedToday"`
	TotalUsers        int64 `json:"totalUsers"`
}

// ReportFilter mirrors the admin filter selects; empty means any
type ReportFilter struct {
	Status   string
	Building string
	Priority string
}

// RegisterForm is the registration form including the confirmation field
type RegisterForm struct {
	FullName        string
	StudentNo       string
	Email           string
	BuildingName    string
	RoomNumber      string
	Floor           string
	Password        string
	ConfirmPassword string
}

// SubmitForm is the report form; location fields are read-only copies of the student profile
type SubmitForm struct {
	StudentNo    string
	BuildingName string
	RoomNumber   string
	Floor        string
	Category     string
	Description  string
	Priority     string
}
