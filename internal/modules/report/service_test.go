package report

import (
	"testing"

	"github.com/florarium/core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsUnknownCategory(t *testing.T) {
	// Category validation happens before any store lookup, so a nil DB
	// proves the rejection never reaches storage.
	svc := NewService(nil)

	for _, category := range []string{"", "rude", "SPAM", "spam "} {
		_, err := svc.Create("reporter-1", &CreateReportDTO{
			ReportedFloraID: "flora-1",
			Category:        category,
			Reason:          "looks off",
		})
		assert.ErrorIs(t, err, errUnknownCategory, "category %q", category)
	}
}

func TestValidReportCategory(t *testing.T) {
	for _, category := range []string{
		models.CategorySpam,
		models.CategoryInappropriate,
		models.CategoryCopyright,
		models.CategoryHarassment,
	} {
		assert.True(t, models.ValidReportCategory(category), category)
	}
	assert.False(t, models.ValidReportCategory("other"))
}
