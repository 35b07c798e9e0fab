package flora

import (
	"errors"
	"time"

	"github.com/florarium/core/internal/models"
	"github.com/florarium/core/internal/pkg/access"
	"github.com/florarium/core/internal/pkg/pagination"
	"github.com/florarium/core/internal/pkg/response"
	"gorm.io/gorm"
)

var errForbidden = errors.New("not the owner")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns floras newest-first. Without a status filter, hidden
// content (either by status or by moderation flag) is excluded.
func (s *Service) List(q ListQuery, pg pagination.Query) ([]models.FloraModel, response.Pagination, error) {
	tx := s.db.Model(&models.FloraModel{}).Order("created_at DESC")

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	} else {
		tx = tx.Where("is_hidden = ?", false)
	}
	if q.AuthorID != "" {
		tx = tx.Where("author_id = ?", q.AuthorID)
	}
	if q.Generation != nil {
		tx = tx.Where("lineage_generation = ?", *q.Generation)
	}

	var floras []models.FloraModel
	page, err := pagination.Paginate(tx, pg, &floras)
	return floras, page, err
}

// Get loads one flora and bumps its view counter. Returns (nil, nil) when absent.
func (s *Service) Get(id string) (*models.FloraModel, error) {
	f, err := s.getByID(s.db, id)
	if err != nil || f == nil {
		return nil, err
	}
	// A lost view bump is tolerable; the read is not.
	_ = s.db.Model(f).UpdateColumn("stats_views", gorm.Expr("stats_views + 1")).Error
	f.Stats.Views++
	return f, nil
}

// Create publishes a new flora, optionally as a cutting from a parent.
// A cutting positions itself under the parent's lineage and bumps the
// parent's children and cutting counters in the same transaction.
func (s *Service) Create(author *models.UserModel, dto *CreateFloraDTO) (*models.FloraModel, error) {
	f, err := buildNew(author, dto, time.Now())
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if dto.ParentFloraID != nil {
			parent, err := s.getByID(tx, *dto.ParentFloraID)
			if err != nil {
				return err
			}
			if parent == nil {
				return gorm.ErrRecordNotFound
			}
			deriveLineage(f, parent)

			if err := tx.Model(parent).UpdateColumns(map[string]interface{}{
				"lineage_children_count": gorm.Expr("lineage_children_count + 1"),
				"stats_cuttings_taken":   gorm.Expr("stats_cuttings_taken + 1"),
			}).Error; err != nil {
				return err
			}
			if err := tx.Model(author).
				UpdateColumn("stats_cuttings_taken", gorm.Expr("stats_cuttings_taken + 1")).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(author).
				UpdateColumn("stats_floras_created", gorm.Expr("stats_floras_created + 1")).Error; err != nil {
				return err
			}
		}
		return tx.Create(f).Error
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Update applies a self-service edit, gated by the access predicate.
// Returns (nil, nil) when the flora does not exist.
func (s *Service) Update(actor access.Context, id string, dto *UpdateFloraDTO) (*models.FloraModel, error) {
	f, err := s.getByID(s.db, id)
	if err != nil || f == nil {
		return nil, err
	}
	if !access.CanModify(actor, access.Ownership{OwnerID: f.AuthorID}) {
		return nil, errForbidden
	}
	if err := applyUpdate(f, dto, time.Now()); err != nil {
		return nil, err
	}
	if err := s.db.Save(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// Delete hard-deletes a flora, gated by the access predicate.
// Returns gorm.ErrRecordNotFound when absent.
func (s *Service) Delete(actor access.Context, id string) error {
	f, err := s.getByID(s.db, id)
	if err != nil {
		return err
	}
	if f == nil {
		return gorm.ErrRecordNotFound
	}
	if !access.CanModify(actor, access.Ownership{OwnerID: f.AuthorID}) {
		return errForbidden
	}
	return s.db.Delete(f).Error
}

func (s *Service) getByID(tx *gorm.DB, id string) (*models.FloraModel, error) {
	var f models.FloraModel
	if err := tx.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
