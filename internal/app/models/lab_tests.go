package models

type LabTestTemplate struct {
	ID          string  `bson:"_id,omitempty"`
	Name        string  `bson:"name"`
	Description string  `bson:"description,omitempty"`
	Price       float64 `bson:"price"`
	TimeModel   `bson:",inline"`
}

type LabTestRequest struct {
	ID             string  `bson:"_id,omitempty"`
	ConsultationID string  `bson:"consultationId"`
	AppointmentID  string  `bson:"appointmentId"`
	PatientID      string  `bson:"patientId"`
	TemplateID     string  `bson:"templateId"`
	TemplateName   string  `bson:"templateName"`
	Status         string  `bson:"status"`
	TotalPrice     float64 `bson:"totalPrice"`
	TechnicianID   string  `bson:"technicianId,omitempty"`
	TimeModel      `bson:",inline"`
}

type LabTestResult struct {
	ID           string `bson:"_id,omitempty"`
	RequestID    string `bson:"requestId"`
	TechnicianID string `bson:"technicianId"`
	ResultStatus string `bson:"resultStatus"`
	ResultData   string `bson:"resultData"`
	Notes        string `bson:"notes,omitempty"`
	TimeModel    `bson:",inline"`
}
