package job

import (
	"unicode/utf8"

	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ===============================
// Job Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusAccepted   Status = "ACCEPTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

const (
	MinTitleLength       = 3
	MinDescriptionLength = 5
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

func ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) < MinTitleLength {
		return httperr.ErrBusiness("invalid_title")
	}
	return nil
}

func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return httperr.ErrBusiness("invalid_description")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

// AssignProvider accepts the job for providerID. There is no guard on the
// current status: an already accepted job is reassigned. It returns the
// provider that was replaced, if any.
func AssignProvider(j *models.Job, providerID string) (previous string) {
	if j.ProviderID != nil {
		previous = *j.ProviderID
	}
	j.ProviderID = &providerID
	j.Status = string(StatusAccepted)
	return previous
}
