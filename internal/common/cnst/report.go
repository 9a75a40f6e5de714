package cnst

// Report statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Report priorities
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
)

// Chat sender types, also used as the portal user type
const (
	SenderStudent = "student"
	SenderAdmin   = "admin"
)

var (
	Statuses   = []string{StatusPending, StatusInProgress, StatusCompleted}
	Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh}
	Buildings  = []string{"Building A", "Building B", "Building C", "Building D"}
	Senders    = []string{SenderStudent, SenderAdmin}
	Categories = []string{"Plumbing", "Electrical", "Furniture", "Cleaning", "Internet", "Other"}
)

// ValidStatus reports whether s is a known report status.
// The API stores any value; only the portal checks membership.
func ValidStatus(s string) bool {
	return contains(Statuses, s)
}

// ValidPriority reports whether p is a known report priority.
func ValidPriority(p string) bool {
	return contains(Priorities, p)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
