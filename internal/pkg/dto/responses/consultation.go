package responses

type Consultation struct {
	ID                   string           `json:"id"`
	AppointmentID        string           `json:"appointment_id"`
	PatientID            string           `json:"patient_id"`
	DoctorID             string           `json:"doctor_id"`
	Diagnosis            string           `json:"diagnosis"`
	Notes                string           `json:"notes,omitempty"`
	RequiresLabTest      bool             `json:"requires_lab_test"`
	RequiresPrescription bool             `json:"requires_prescription"`
	LabTestRequests      []LabTestRequest `json:"lab_test_requests,omitempty"`
}
