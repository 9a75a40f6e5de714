package dto

// SubmitReportRequest carries the location fields copied from the student profile
type SubmitReportRequest struct {
	StudentID        uint   `json:"studentId"`
	StudentNo        string `json:"studentNo"`
	BuildingName     string `json:"buildingName"`
	RoomNumber       string `json:"roomNumber"`
	Floor            string `json:"floor"`
	IssueDescription string `json:"issueDescription"`
	Category         string `json:"category"`
	Priority         string `json:"priority,omitempty"`
}

// UpdateReportRequest overwrites all three fields
type UpdateReportRequest struct {
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	AdminNotes string `json:"adminNotes"`
}

// PostMessageRequest represents a chat message posted on a report
type PostMessageRequest struct {
	SenderType string `json:"senderType"`
	SenderID   uint   `json:"senderId"`
	Message    string `json:"message"`
}
