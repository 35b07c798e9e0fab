package models

import "time"

// User roles.
const (
	RoleCultivator = "cultivator"
	RoleAdmin      = "admin"
)

// Account statuses.
const (
	AccountActive    = "active"
	AccountSuspended = "suspended"
	AccountDeleted   = "deleted"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleCultivator || r == RoleAdmin
}

// ValidAccountStatus reports whether s is a known account status.
func ValidAccountStatus(s string) bool {
	return s == AccountActive || s == AccountSuspended || s == AccountDeleted
}

// UserStats aggregates per-user content counters.
type UserStats struct {
	FlorasCreated int `json:"florasCreated"`
	CuttingsTaken int `json:"cuttingsTaken"`
}

// UserModel represents a cultivator or admin account.
// Accounts are never hard-deleted: soft deletion anonymizes the row in
// place so the synthesized username keeps occupying the unique index.
type UserModel struct {
	Base
	Username      string     `json:"username"      gorm:"uniqueIndex;size:191;not null"`
	DisplayName   string     `json:"displayName"`
	Email         *string    `json:"email,omitempty" gorm:"uniqueIndex;size:191"`
	Password      string     `json:"-"             gorm:"size:191"`
	Role          string     `json:"role"          gorm:"size:32;default:cultivator"`
	AccountStatus string     `json:"accountStatus" gorm:"size:32;index;default:active"`
	IsAnonymized  bool       `json:"isAnonymized"  gorm:"default:false"`
	Stats         UserStats  `json:"stats"         gorm:"embedded;embeddedPrefix:stats_"`
	LastLoginAt   *time.Time `json:"lastLoginAt"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
}

func (UserModel) TableName() string { return "users" }
