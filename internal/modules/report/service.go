package report

import (
	"errors"

	"github.com/florarium/core/internal/models"
	"gorm.io/gorm"
)

var (
	errUnknownCategory = errors.New("unknown report category")
	errFloraNotFound   = errors.New("reported flora not found")
)

type CreateReportDTO struct {
	ReportedFloraID string `json:"reportedFloraId" binding:"required"`
	Category        string `json:"category"        binding:"required"`
	Reason          string `json:"reason"          binding:"required,max=500"`
	Description     string `json:"description"     binding:"omitempty,max=2000"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create files a report against an existing flora. The flora is
// pre-validated; reports against deleted content are rejected rather than
// dangling. Reports start pending and are only ever advanced by admins.
func (s *Service) Create(reporterID string, dto *CreateReportDTO) (*models.ReportModel, error) {
	if !models.ValidReportCategory(dto.Category) {
		return nil, errUnknownCategory
	}

	var count int64
	if err := s.db.Model(&models.FloraModel{}).
		Where("id = ?", dto.ReportedFloraID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errFloraNotFound
	}

	r := models.ReportModel{
		ReportedFloraID: dto.ReportedFloraID,
		ReportedBy:      reporterID,
		Reason:          dto.Reason,
		Category:        dto.Category,
		Description:     dto.Description,
		Status:          models.ReportPending,
	}
	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}
