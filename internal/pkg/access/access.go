// Package access holds the authorization predicate shared by every
// resource-mutating path, so the owner-or-admin rule is evaluated in one
// place instead of being re-derived per route.
package access

import "github.com/florarium/core/internal/models"

// Context identifies the authenticated caller.
type Context struct {
	UserID string
	Role   string
}

// Ownership describes who owns the target resource. OwnerID is nil when
// the owner has been anonymized; such resources answer to admins only,
// since the anonymized account can never authenticate again.
type Ownership struct {
	OwnerID *string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Context) IsAdmin() bool { return c.Role == models.RoleAdmin }

// CanModify decides whether the caller may mutate the owned resource:
// the owner may, an admin may, nobody else.
func CanModify(c Context, o Ownership) bool {
	if c.IsAdmin() {
		return true
	}
	if o.OwnerID == nil {
		return false
	}
	return c.UserID != "" && c.UserID == *o.OwnerID
}
