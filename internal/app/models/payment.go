package models

type Payment struct {
	ID             string  `bson:"_id,omitempty"`
	TransactionID  string  `bson:"transactionId"`
	PatientID      string  `bson:"patientId"`
	Type           string  `bson:"type"`
	ReferenceID    string  `bson:"referenceId"`
	Method         string  `bson:"method"`
	Amount         float64 `bson:"amount"`
	InsuranceID    string  `bson:"insuranceId,omitempty"`
	CoverageAmount float64 `bson:"coverageAmount"`
	PatientPays    float64 `bson:"patientPays"`
	Currency       string  `bson:"currency"`
	Status         string  `bson:"status"`
	TimeModel      `bson:",inline"`
}
