package models

// Each medication line is its own prescription document with its own
// review, payment and dispense lifecycle.
type Prescription struct {
	ID                 string  `bson:"_id,omitempty"`
	ConsultationID     string  `bson:"consultationId"`
	AppointmentID      string  `bson:"appointmentId"`
	PatientID          string  `bson:"patientId"`
	DoctorID           string  `bson:"doctorId"`
	PharmacyID         string  `bson:"pharmacyId"`
	PharmacistID       string  `bson:"pharmacistId,omitempty"`
	MedicationID       string  `bson:"medicationId"`
	MedicationName     string  `bson:"medicationName"`
	Dosage             string  `bson:"dosage"`
	Instructions       string  `bson:"instructions,omitempty"`
	Quantity           int     `bson:"quantity"`
	UnitPrice          float64 `bson:"unitPrice"`
	TotalPrice         float64 `bson:"totalPrice"`
	Status             string  `bson:"status"`
	RejectionReason    string  `bson:"rejectionReason,omitempty"`
	SignatureObjectKey string  `bson:"signatureObjectKey"`
	TimeModel          `bson:",inline"`
}
