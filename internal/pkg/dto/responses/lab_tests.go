package responses

type LabTestTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type LabTestRequest struct {
	ID             string  `json:"id"`
	ConsultationID string  `json:"consultation_id"`
	AppointmentID  string  `json:"appointment_id"`
	PatientID      string  `json:"patient_id"`
	PatientName    string  `json:"patient_name,omitempty"`
	TemplateID     string  `json:"template_id"`
	TemplateName   string  `json:"template_name"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"total_price"`
	TechnicianID   string  `json:"technician_id,omitempty"`
	Result         *LabTestResult `json:"result,omitempty"`
}

type LabTestResult struct {
	ID           string `json:"id"`
	RequestID    string `json:"request_id"`
	TechnicianID string `json:"technician_id"`
	ResultStatus string `json:"result_status"`
	ResultData   string `json:"result_data"`
	Notes        string `json:"notes,omitempty"`
}
