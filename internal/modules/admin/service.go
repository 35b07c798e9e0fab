package admin

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/florarium/core/internal/models"
	"github.com/florarium/core/internal/pkg/pagination"
	pkgredis "github.com/florarium/core/internal/pkg/redis"
	"github.com/florarium/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	metricsCacheKey = "florarium:admin:metrics"
	metricsCacheTTL = 30 * time.Second
)

type Service struct {
	db *gorm.DB
	rc *pkgredis.Client
}

func NewService(db *gorm.DB, rc *pkgredis.Client) *Service {
	return &Service{db: db, rc: rc}
}

// Metrics returns the dashboard totals, cached briefly in Redis. Cache
// failures fall through to the store.
func (s *Service) Metrics(ctx context.Context) (*Metrics, error) {
	if s.rc != nil {
		if cached, err := s.rc.Get(ctx, metricsCacheKey); err == nil && cached != "" {
			var m Metrics
			if json.Unmarshal([]byte(cached), &m) == nil {
				return &m, nil
			}
		}
	}

	var m Metrics
	if err := s.db.Model(&models.FloraModel{}).Count(&m.TotalFloras).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.UserModel{}).
		Where("account_status = ?", models.AccountActive).
		Count(&m.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ReportModel{}).
		Where("status = ?", models.ReportPending).
		Count(&m.PendingReports).Error; err != nil {
		return nil, err
	}

	if s.rc != nil {
		if raw, err := json.Marshal(&m); err == nil {
			_ = s.rc.Set(ctx, metricsCacheKey, raw, metricsCacheTTL)
		}
	}
	return &m, nil
}

// Usage aggregates creation activity: floras per day, signups per week.
func (s *Service) Usage() (*Usage, error) {
	var u Usage
	err := s.db.Model(&models.FloraModel{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS period, COUNT(*) AS count").
		Group("period").Order("period ASC").
		Scan(&u.FlorasByDay).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.UserModel{}).
		Select("DATE_FORMAT(created_at, '%Y-%U') AS period, COUNT(*) AS count").
		Group("period").Order("period ASC").
		Scan(&u.NewUsersByWeek).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns every account newest-first, deleted ones included:
// moderation needs to see the full ledger.
func (s *Service) ListUsers(pg pagination.Query) ([]models.UserModel, response.Pagination, error) {
	tx := s.db.Model(&models.UserModel{}).Order("created_at DESC")
	var users []models.UserModel
	page, err := pagination.Paginate(tx, pg, &users)
	return users, page, err
}

// UpdateUserRole changes an account's role and audits it.
func (s *Service) UpdateUserRole(actor Actor, userID string, dto *UpdateUserRoleDTO) (*models.UserModel, error) {
	if !models.ValidRole(dto.Role) {
		return nil, errUnknownRole
	}

	user, err := s.getUser(userID)
	if err != nil || user == nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("role", dto.Role).Error; err != nil {
			return err
		}
		user.Role = dto.Role
		return appendAudit(tx, actor, auditEntry{
			Action:            "user_role_update",
			Category:          models.AuditUserManagement,
			TargetType:        models.TargetUser,
			TargetID:          user.ID,
			TargetDescription: user.Username,
			Details:           models.LogDetails{Reason: dto.Reason, AdditionalNotes: dto.AdditionalNotes},
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserStatus changes an account's status and audits it. Suspension
// takes effect on the target's very next request, since tokens are
// re-validated against live status.
func (s *Service) UpdateUserStatus(actor Actor, userID string, dto *UpdateUserStatusDTO) (*models.UserModel, error) {
	if !models.ValidAccountStatus(dto.Status) {
		return nil, errUnknownStatus
	}
	// A "deleted" row without the anonymization cascade would keep the
	// email and credential hash around. Deletion has its own endpoint.
	if dto.Status == models.AccountDeleted {
		return nil, errDeletionViaStatus
	}

	user, err := s.getUser(userID)
	if err != nil || user == nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("account_status", dto.Status).Error; err != nil {
			return err
		}
		user.AccountStatus = dto.Status
		return appendAudit(tx, actor, auditEntry{
			Action:            "user_status_update",
			Category:          models.AuditUserManagement,
			TargetType:        models.TargetUser,
			TargetID:          user.ID,
			TargetDescription: user.Username,
			Details:           models.LogDetails{Reason: dto.Reason, AdditionalNotes: dto.AdditionalNotes},
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SoftDeleteUser anonymizes an account in place and cascades to every
// flora it authored. The user mutation, the flora bulk update and the
// audit append commit or roll back together: the cascade can never be
// left half-applied.
func (s *Service) SoftDeleteUser(actor Actor, userID string, dto *SoftDeleteUserDTO) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return gorm.ErrRecordNotFound
	}

	anonymizeUser(user, time.Now())

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Updates(map[string]interface{}{
			"account_status": user.AccountStatus,
			"is_anonymized":  true,
			"email":          nil,
			"password":       "",
			"deleted_at":     user.DeletedAt,
			"username":       user.Username,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.FloraModel{}).
			Where("author_id = ?", user.ID).
			Updates(map[string]interface{}{
				"is_author_anonymized": true,
				"author_username":      "Anonymous",
			}).Error; err != nil {
			return err
		}

		// The trail snapshots the anonymized name: scrubbing is
		// irreversible, so the replaced identity must not survive in
		// another table.
		return appendAudit(tx, actor, auditEntry{
			Action:            "user_soft_delete",
			Category:          models.AuditUserManagement,
			TargetType:        models.TargetUser,
			TargetID:          user.ID,
			TargetDescription: user.Username,
			Details:           models.LogDetails{Reason: dto.Reason, AdditionalNotes: dto.AdditionalNotes},
		})
	})
}

// ListReports returns reports newest-first, optionally filtered by status.
func (s *Service) ListReports(status string, pg pagination.Query) ([]models.ReportModel, response.Pagination, error) {
	tx := s.db.Model(&models.ReportModel{}).Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var reports []models.ReportModel
	page, err := pagination.Paginate(tx, pg, &reports)
	return reports, page, err
}

// ReviewReport advances a report through its state machine, stamps the
// resolution block and audits the review. The recorded action is a label
// only; enacting it is a separate moderation call.
func (s *Service) ReviewReport(actor Actor, reportID string, dto *ReviewReportDTO) (*models.ReportModel, error) {
	var report models.ReportModel
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := applyReview(&report, dto, actor.ID, time.Now()); err != nil {
		return nil, err
	}

	desc := report.Reason
	if desc == "" {
		desc = report.Category
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&report).Error; err != nil {
			return err
		}
		return appendAudit(tx, actor, auditEntry{
			Action:            "report_update",
			Category:          models.AuditContentModeration,
			TargetType:        models.TargetReport,
			TargetID:          report.ID,
			TargetDescription: desc,
			Details:           models.LogDetails{Reason: dto.Reason, AdditionalNotes: dto.AdminNotes},
		})
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListFlagged returns floras pulled from public view, by status or by the
// moderation flag, most recently touched first.
func (s *Service) ListFlagged(pg pagination.Query) ([]models.FloraModel, response.Pagination, error) {
	tx := s.db.Model(&models.FloraModel{}).
		Where("status = ? OR is_hidden = ?", models.FloraHidden, true).
		Order("updated_at DESC")
	var floras []models.FloraModel
	page, err := pagination.Paginate(tx, pg, &floras)
	return floras, page, err
}

// ModerateFlora applies a status/visibility override and audits it. This
// is the only path that can hide content.
func (s *Service) ModerateFlora(actor Actor, floraID string, dto *ModerateFloraDTO) (*models.FloraModel, error) {
	var flora models.FloraModel
	if err := s.db.First(&flora, "id = ?", floraID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := applyModeration(&flora, dto); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&flora).Error; err != nil {
			return err
		}
		return appendAudit(tx, actor, auditEntry{
			Action:            "flora_status_update",
			Category:          models.AuditContentModeration,
			TargetType:        models.TargetFlora,
			TargetID:          flora.ID,
			TargetDescription: flora.Title,
			Details:           models.LogDetails{Reason: dto.Reason, AdditionalNotes: dto.AdditionalNotes},
		})
	})
	if err != nil {
		return nil, err
	}
	return &flora, nil
}

func (s *Service) getUser(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
