package admin

import (
	"github.com/florarium/core/internal/models"
	"gorm.io/gorm"
)

// auditEntry describes the privileged mutation being recorded. Target
// fields are snapshots taken at mutation time.
type auditEntry struct {
	Action            string
	Category          string
	TargetType        string
	TargetID          string
	TargetDescription string
	Details           models.LogDetails
}

// appendAudit writes one audit row inside the caller's transaction. Every
// privileged mutation calls this before the transaction commits, so a
// failed append rolls the mutation back: the trail never under-reports.
func appendAudit(tx *gorm.DB, actor Actor, e auditEntry) error {
	return tx.Create(&models.AdminLogModel{
		AdminID:           actor.ID,
		AdminUsername:     actor.Username,
		Action:            e.Action,
		ActionCategory:    e.Category,
		TargetType:        e.TargetType,
		TargetID:          e.TargetID,
		TargetDescription: e.TargetDescription,
		Details:           e.Details,
		IPAddress:         actor.IP,
	}).Error
}
