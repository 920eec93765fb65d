package responses

type Payment struct {
	ID             string  `json:"id"`
	TransactionID  string  `json:"transaction_id"`
	PatientID      string  `json:"patient_id"`
	Type           string  `json:"type"`
	ReferenceID    string  `json:"reference_id"`
	Method         string  `json:"payment_method"`
	Amount         float64 `json:"amount"`
	InsuranceID    string  `json:"insurance_id,omitempty"`
	CoverageAmount float64 `json:"coverage_amount"`
	PatientPays    float64 `json:"patient_pays"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
}
