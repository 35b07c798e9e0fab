package models

// Audit action categories.
const (
	AuditUserManagement    = "user_management"
	AuditContentModeration = "content_moderation"
)

// Audit target types.
const (
	TargetUser   = "user"
	TargetFlora  = "flora"
	TargetReport = "report"
)

// LogDetails carries the free-text context supplied with a privileged action.
type LogDetails struct {
	Reason          string `json:"reason,omitempty"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
}

// AdminLogModel is one entry in the append-only audit trail. A row is
// created in the same transaction as every privileged mutation and is
// never updated or deleted; target fields are snapshots taken at mutation
// time, not references to be dereferenced later.
type AdminLogModel struct {
	Base
	AdminID           string     `json:"adminId"           gorm:"type:char(36);index"`
	AdminUsername     string     `json:"adminUsername"`
	Action            string     `json:"action"            gorm:"size:64;index"`
	ActionCategory    string     `json:"actionCategory"    gorm:"size:32;index"`
	TargetType        string     `json:"targetType"        gorm:"size:32"`
	TargetID          string     `json:"targetId"          gorm:"type:char(36);index"`
	TargetDescription string     `json:"targetDescription"`
	Details           LogDetails `json:"details"           gorm:"embedded;embeddedPrefix:details_"`
	IPAddress         string     `json:"ipAddress"`
}

func (AdminLogModel) TableName() string { return "admin_logs" }
