package bid

import (
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
)

func InitialStatus() Status {
	return StatusPending
}

func ValidateAmount(amountQAR int) error {
	if amountQAR <= 0 {
		return httperr.ErrBusiness("invalid_amount")
	}
	return nil
}

// Accept marks the bid accepted. Accepting twice is harmless.
func Accept(b *models.Bid) {
	b.Status = string(StatusAccepted)
}
