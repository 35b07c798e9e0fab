package flora

import "github.com/florarium/core/internal/models"

type CreateFloraDTO struct {
	Title         string                 `json:"title"  binding:"required,max=100"`
	Text          string                 `json:"text"   binding:"required"`
	Status        string                 `json:"status"`
	ParentFloraID *string                `json:"parentFloraId"`
	Generative    models.Generative      `json:"generative"`
	License       map[string]interface{} `json:"license"`
}

type UpdateFloraDTO struct {
	Title      *string                `json:"title" binding:"omitempty,max=100"`
	Text       *string                `json:"text"`
	Status     *string                `json:"status"`
	IsHidden   *bool                  `json:"isHidden"`
	Generative *models.Generative     `json:"generative"`
	License    map[string]interface{} `json:"license"`
}

// ListQuery mirrors the public listing filters. An explicit Status filter
// bypasses the default hidden-exclusion: a caller asking for a concrete
// status sees exactly that status.
type ListQuery struct {
	Status     string
	AuthorID   string
	Generation *int
}
