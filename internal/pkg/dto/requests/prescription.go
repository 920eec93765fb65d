package requests

type PrescriptionLine struct {
	MedicationID string `json:"medication_id" validate:"required"`
	Dosage       string `json:"dosage" validate:"required,not_blank"`
	Instructions string `json:"instructions,omitempty"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

// Each line becomes its own prescription document.
type CreatePrescription struct {
	AppointmentID string             `json:"appointment_id" validate:"required"`
	PharmacyID    string             `json:"pharmacy_id" validate:"required"`
	Items         []PrescriptionLine `json:"items" validate:"required,min=1,dive"`

	// Base64 encoded signature image, stored as a blob before the
	// prescription document is persisted.
	SignatureData      string `json:"signature_data" validate:"required"`
	SignatureExtension string `json:"signature_extension,omitempty"`
}

type ReviewPrescription struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason,omitempty"`
}
