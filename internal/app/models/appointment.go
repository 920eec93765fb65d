package models

// Vitals are recorded by a nurse when an appointment is approved.
type Vitals struct {
	Weight        float64 `bson:"weight" json:"weight"`
	Temperature   float64 `bson:"temperature" json:"temperature"`
	BloodPressure string  `bson:"bloodPressure,omitempty" json:"blood_pressure,omitempty"`
	Notes         string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Appointment struct {
	ID           string `bson:"_id,omitempty"`
	PatientID    string `bson:"patientId"`
	DoctorID     string `bson:"doctorId"`
	HospitalID   string `bson:"hospitalId"`
	DepartmentID string `bson:"departmentId"`
	InsuranceID  string `bson:"insuranceId,omitempty"`
	Date         string `bson:"date"`
	SlotTime     string `bson:"slotTime"`
	Status       string `bson:"status"`

	// Fee snapshot taken at booking time. The consultation payment charges
	// this value, so a later fee edit on the doctor never changes the price
	// of an already booked appointment.
	ConsultationFee float64 `bson:"consultationFee"`

	RejectionReason string  `bson:"rejectionReason,omitempty"`
	Vitals          *Vitals `bson:"vitals,omitempty"`
	TimeModel       `bson:",inline"`
}
