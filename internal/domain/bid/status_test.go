package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func TestValidateAmount(t *testing.T) {
	assert.True(t, httperr.IsBusiness(ValidateAmount(0), "invalid_amount"))
	assert.True(t, httperr.IsBusiness(ValidateAmount(-5), "invalid_amount"))
	assert.NoError(t, ValidateAmount(1))
}

func TestAccept(t *testing.T) {
	b := &models.Bid{Status: string(InitialStatus())}
	Accept(b)
	assert.Equal(t, string(StatusAccepted), b.Status)
}
