package responses

import "medipass-service/internal/app/models"

type Appointment struct {
	ID              string         `json:"id"`
	PatientID       string         `json:"patient_id"`
	PatientName     string         `json:"patient_name,omitempty"`
	DoctorID        string         `json:"doctor_id"`
	DoctorName      string         `json:"doctor_name,omitempty"`
	HospitalID      string         `json:"hospital_id"`
	DepartmentID    string         `json:"department_id"`
	InsuranceID     string         `json:"insurance_id,omitempty"`
	Date            string         `json:"date"`
	SlotTime        string         `json:"slot_time"`
	Status          string         `json:"status"`
	ConsultationFee float64        `json:"consultation_fee"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Vitals          *models.Vitals `json:"vitals,omitempty"`
	HasPaid         bool           `json:"has_paid"`
}

type AvailableSlots struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}
