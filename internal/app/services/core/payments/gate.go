package payments

import (
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
)

// CoverageAmount is the share of amount the insurance carries.
func CoverageAmount(amount, coveragePercentage float64) float64 {
	return amount * coveragePercentage / 100
}

// PatientPays is the remainder the patient owes after insurance coverage.
// Without insurance coveragePercentage is 0 and the patient owes the full
// amount.
func PatientPays(amount, coveragePercentage float64) float64 {
	return amount - CoverageAmount(amount, coveragePercentage)
}

// HasPaid reports whether any payment in the list completed.
func HasPaid(paymentList []models.Payment) bool {
	for _, payment := range paymentList {
		if payment.Status == constvars.PaymentStatusCompleted {
			return true
		}
	}
	return false
}
