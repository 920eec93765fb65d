package models

type Consultation struct {
	ID                   string `bson:"_id,omitempty"`
	AppointmentID        string `bson:"appointmentId"`
	PatientID            string `bson:"patientId"`
	DoctorID             string `bson:"doctorId"`
	Diagnosis            string `bson:"diagnosis"`
	Notes                string `bson:"notes,omitempty"`
	RequiresLabTest      bool   `bson:"requiresLabTest"`
	RequiresPrescription bool   `bson:"requiresPrescription"`
	TimeModel            `bson:",inline"`
}
