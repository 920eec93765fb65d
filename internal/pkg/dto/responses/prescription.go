package responses

type Prescription struct {
	ID              string  `json:"id"`
	ConsultationID  string  `json:"consultation_id"`
	AppointmentID   string  `json:"appointment_id"`
	PatientID       string  `json:"patient_id"`
	PatientName     string  `json:"patient_name,omitempty"`
	DoctorID        string  `json:"doctor_id"`
	PharmacyID      string  `json:"pharmacy_id"`
	PharmacistID    string  `json:"pharmacist_id,omitempty"`
	MedicationID    string  `json:"medication_id"`
	MedicationName  string  `json:"medication_name"`
	Dosage          string  `json:"dosage"`
	Instructions    string  `json:"instructions,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	SignatureURL    string  `json:"signature_url,omitempty"`
}
