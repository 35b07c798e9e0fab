package models

import "time"

// Report categories.
const (
	CategorySpam          = "spam"
	CategoryInappropriate = "inappropriate"
	CategoryCopyright     = "copyright"
	CategoryHarassment    = "harassment"
)

// Report statuses.
const (
	ReportPending   = "pending"
	ReportReviewing = "reviewing"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// Resolution actions recorded on a reviewed report. The action is a label
// for what the admin did, not a trigger: enacting it (e.g. hiding the
// flora) is a separate moderation call.
const (
	ActionNone          = "none"
	ActionFloraHidden   = "flora_hidden"
	ActionFloraRemoved  = "flora_removed"
	ActionUserWarned    = "user_warned"
	ActionUserSuspended = "user_suspended"
)

// ValidReportCategory reports whether c is a known category.
func ValidReportCategory(c string) bool {
	switch c {
	case CategorySpam, CategoryInappropriate, CategoryCopyright, CategoryHarassment:
		return true
	}
	return false
}

// ValidReportStatus reports whether s is a known report status.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportPending, ReportReviewing, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// ValidResolutionAction reports whether a is a known resolution action.
func ValidResolutionAction(a string) bool {
	switch a {
	case ActionNone, ActionFloraHidden, ActionFloraRemoved, ActionUserWarned, ActionUserSuspended:
		return true
	}
	return false
}

// Resolution records the outcome of an admin review. ResolvedBy and
// ResolvedAt reflect the most recent reviewer: every admin review call
// re-stamps them.
type Resolution struct {
	ResolvedBy *string    `json:"resolvedBy,omitempty" gorm:"type:char(36)"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	Action     string     `json:"action,omitempty"     gorm:"size:64"`
	AdminNotes string     `json:"adminNotes,omitempty"`
}

// ReportModel is a moderation report filed against a flora.
// Reports are never deleted.
type ReportModel struct {
	Base
	ReportedFloraID string     `json:"reportedFloraId" gorm:"type:char(36);index;not null"`
	ReportedBy      string     `json:"reportedBy"      gorm:"type:char(36);index"`
	Reason          string     `json:"reason"          gorm:"size:500"`
	Category        string     `json:"category"        gorm:"size:32;not null"`
	Description     string     `json:"description"`
	Status          string     `json:"status"          gorm:"size:32;index;default:pending"`
	Resolution      Resolution `json:"resolution"      gorm:"embedded;embeddedPrefix:resolution_"`
}

func (ReportModel) TableName() string { return "reports" }
