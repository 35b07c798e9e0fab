package admin

// Actor identifies the admin performing a privileged operation, captured
// once per request for the audit trail.
type Actor struct {
	ID       string
	Username string
	IP       string
}

type UpdateUserRoleDTO struct {
	Role            string `json:"role" binding:"required"`
	Reason          string `json:"reason"`
	AdditionalNotes string `json:"additionalNotes"`
}

type UpdateUserStatusDTO struct {
	Status          string `json:"status" binding:"required"`
	Reason          string `json:"reason"`
	AdditionalNotes string `json:"additionalNotes"`
}

type SoftDeleteUserDTO struct {
	Reason          string `json:"reason"`
	AdditionalNotes string `json:"additionalNotes"`
}

type ReviewReportDTO struct {
	Status     string `json:"status"`
	Action     string `json:"action"`
	AdminNotes string `json:"adminNotes"`
	Reason     string `json:"reason"`
}

type ModerateFloraDTO struct {
	Status          *string `json:"status"`
	IsHidden        *bool   `json:"isHidden"`
	Reason          string  `json:"reason"`
	AdditionalNotes string  `json:"additionalNotes"`
}

// Metrics is the admin dashboard headline.
type Metrics struct {
	TotalFloras    int64 `json:"totalFloras"`
	ActiveUsers    int64 `json:"totalUsers"`
	PendingReports int64 `json:"pendingReports"`
}

// UsageBucket is one row of a period aggregation.
type UsageBucket struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
}

// Usage groups content and signup activity over time.
type Usage struct {
	FlorasByDay    []UsageBucket `json:"florasByDay"`
	NewUsersByWeek []UsageBucket `json:"newUsersByWeek"`
}
