package requests

type SaveConsultation struct {
	AppointmentID        string   `json:"appointment_id" validate:"required"`
	Diagnosis            string   `json:"diagnosis" validate:"required,not_blank"`
	Notes                string   `json:"notes,omitempty"`
	RequiresLabTest      bool     `json:"requires_lab_test"`
	RequiresPrescription bool     `json:"requires_prescription"`
	LabTestTemplateIDs   []string `json:"lab_test_template_ids,omitempty"`
}
