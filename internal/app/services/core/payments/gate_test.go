package payments

import (
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageAmount(t *testing.T) {
	assert.Equal(t, 0.0, CoverageAmount(15000, 0))
	assert.Equal(t, 7500.0, CoverageAmount(15000, 50))
	assert.Equal(t, 15000.0, CoverageAmount(15000, 100))
	assert.Equal(t, 1200.0, CoverageAmount(8000, 15))
}

func TestPatientPays(t *testing.T) {
	t.Run("no insurance charges the full amount", func(t *testing.T) {
		assert.Equal(t, 15000.0, PatientPays(15000, 0))
	})

	t.Run("partial coverage leaves the remainder", func(t *testing.T) {
		assert.Equal(t, 7500.0, PatientPays(15000, 50))
		assert.Equal(t, 6800.0, PatientPays(8000, 15))
	})

	t.Run("full coverage leaves nothing to pay", func(t *testing.T) {
		assert.Equal(t, 0.0, PatientPays(15000, 100))
	})
}

func TestHasPaid(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.False(t, HasPaid(nil))
		assert.False(t, HasPaid([]models.Payment{}))
	})

	t.Run("only non-completed payments", func(t *testing.T) {
		payments := []models.Payment{
			{Status: constvars.PaymentStatusPending},
			{Status: constvars.PaymentStatusFailed},
		}
		assert.False(t, HasPaid(payments))
	})

	t.Run("any completed payment counts", func(t *testing.T) {
		payments := []models.Payment{
			{Status: constvars.PaymentStatusFailed},
			{Status: constvars.PaymentStatusCompleted},
		}
		assert.True(t, HasPaid(payments))
	})
}
