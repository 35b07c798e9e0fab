package flora

import (
	"errors"
	"time"

	"github.com/florarium/core/internal/models"
)

var (
	errImmutableText  = errors.New("text is immutable after publish")
	errModerationOnly = errors.New("hidden state is reserved for moderation")
	errSealedFinal    = errors.New("a sealed flora cannot return to blossoming")
	errUnknownStatus  = errors.New("unknown status")
)

// buildNew assembles a fresh flora for its author. Creation counts as
// publication: publishedAt is stamped immediately, and an explicit sealed
// status seals at birth. The hidden state is not reachable here.
func buildNew(author *models.UserModel, dto *CreateFloraDTO, now time.Time) (*models.FloraModel, error) {
	status := dto.Status
	if status == "" {
		status = models.FloraBlossoming
	}
	switch status {
	case models.FloraBlossoming, models.FloraSealed:
	case models.FloraHidden:
		return nil, errModerationOnly
	default:
		return nil, errUnknownStatus
	}

	authorID := author.ID
	f := &models.FloraModel{
		Title:          dto.Title,
		Text:           dto.Text,
		AuthorID:       &authorID,
		AuthorUsername: author.Username,
		Status:         status,
		Generative:     dto.Generative,
		License:        dto.License,
		PublishedAt:    &now,
	}
	if status == models.FloraSealed {
		f.SealedAt = &now
	}
	return f, nil
}

// applyUpdate applies a self-service edit to f in place.
//
// Rules, in order: published text is immutable for everyone, admins
// included; hiding is a moderation override and never reachable here;
// sealing stamps sealedAt once and backfills publishedAt; a sealed flora
// stays sealed.
func applyUpdate(f *models.FloraModel, dto *UpdateFloraDTO, now time.Time) error {
	if dto.Text != nil && f.PublishedAt != nil && *dto.Text != f.Text {
		return errImmutableText
	}
	if dto.IsHidden != nil {
		return errModerationOnly
	}

	if dto.Status != nil {
		next := *dto.Status
		if !models.ValidFloraStatus(next) {
			return errUnknownStatus
		}
		if next == models.FloraHidden {
			return errModerationOnly
		}
		if f.Status == models.FloraSealed && next == models.FloraBlossoming {
			return errSealedFinal
		}

		f.Status = next
		if next == models.FloraSealed {
			if f.SealedAt == nil {
				f.SealedAt = &now
			}
			if f.PublishedAt == nil {
				f.PublishedAt = &now
			}
		}
		if next == models.FloraBlossoming && f.PublishedAt == nil {
			f.PublishedAt = &now
		}
	}

	if dto.Title != nil {
		f.Title = *dto.Title
	}
	if dto.Text != nil {
		f.Text = *dto.Text
	}
	if dto.Generative != nil {
		f.Generative = *dto.Generative
	}
	if dto.License != nil {
		f.License = dto.License
	}
	return nil
}

// deriveLineage positions a child under its parent: next generation, root
// inherited (or the parent itself when the parent is a root), and the
// parent's author appended to the co-author chain.
func deriveLineage(child *models.FloraModel, parent *models.FloraModel) {
	child.Lineage.Generation = parent.Lineage.Generation + 1
	parentID := parent.ID
	child.Lineage.ParentFloraID = &parentID
	if parent.Lineage.RootFloraID != nil {
		child.Lineage.RootFloraID = parent.Lineage.RootFloraID
	} else {
		child.Lineage.RootFloraID = &parentID
	}

	child.CoAuthors = append(append([]models.CoAuthor{}, parent.CoAuthors...), models.CoAuthor{
		UserID:        derefOrEmpty(parent.AuthorID),
		Username:      parent.AuthorUsername,
		Generation:    parent.Lineage.Generation,
		ContributedAt: parent.CreatedAt,
		IsAnonymized:  parent.IsAuthorAnonymized,
	})
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
