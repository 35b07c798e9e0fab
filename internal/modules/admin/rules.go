package admin

import (
	"errors"
	"time"

	"github.com/florarium/core/internal/models"
)

var (
	errUnknownStatus     = errors.New("unknown status")
	errUnknownRole       = errors.New("unknown role")
	errUnknownAction     = errors.New("unknown resolution action")
	errBadTransition     = errors.New("report status cannot move backward")
	errTerminalReport    = errors.New("report is already closed")
	errDeletionViaStatus = errors.New("deletion goes through the delete endpoint")
)

// canTransition encodes the report state machine: pending may move to
// reviewing or straight to a terminal state, reviewing may close, and the
// terminal states accept nothing. Re-asserting the current status is a
// no-op, not a transition.
func canTransition(from, to string) error {
	if from == to {
		return nil
	}
	switch from {
	case models.ReportPending:
		return nil
	case models.ReportReviewing:
		if to == models.ReportResolved || to == models.ReportDismissed {
			return nil
		}
		return errBadTransition
	case models.ReportResolved, models.ReportDismissed:
		return errTerminalReport
	}
	return errUnknownStatus
}

// applyReview applies an admin review to r in place. Whatever else
// changes, the resolver identity and timestamp are re-stamped: the
// resolution block names the most recent reviewer, not the first.
func applyReview(r *models.ReportModel, dto *ReviewReportDTO, adminID string, now time.Time) error {
	if dto.Status != "" {
		if !models.ValidReportStatus(dto.Status) {
			return errUnknownStatus
		}
		if err := canTransition(r.Status, dto.Status); err != nil {
			return err
		}
		r.Status = dto.Status
	}
	if dto.Action != "" {
		if !models.ValidResolutionAction(dto.Action) {
			return errUnknownAction
		}
		r.Resolution.Action = dto.Action
	}
	if dto.AdminNotes != "" {
		r.Resolution.AdminNotes = dto.AdminNotes
	}

	r.Resolution.ResolvedBy = &adminID
	r.Resolution.ResolvedAt = &now
	return nil
}

// anonymizedUsername derives the stable replacement name for a
// soft-deleted account from its identifier, so it stays unique and the
// original name never leaks back.
func anonymizedUsername(id string) string {
	suffix := id
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "deleted_user_" + suffix
}

// anonymizeUser scrubs the personally identifying fields in place.
// The row survives: deleted accounts keep their id and keep occupying the
// username index.
func anonymizeUser(u *models.UserModel, now time.Time) {
	u.AccountStatus = models.AccountDeleted
	u.IsAnonymized = true
	u.Email = nil
	u.Password = ""
	u.DeletedAt = &now
	u.Username = anonymizedUsername(u.ID)
}

// applyModeration applies an admin status/visibility override to f in
// place. This is the only path that may hide a flora; the text is never
// touched here.
func applyModeration(f *models.FloraModel, dto *ModerateFloraDTO) error {
	if dto.Status != nil {
		if !models.ValidFloraStatus(*dto.Status) {
			return errUnknownStatus
		}
		f.Status = *dto.Status
	}
	if dto.IsHidden != nil {
		f.IsHidden = *dto.IsHidden
	}
	return nil
}
