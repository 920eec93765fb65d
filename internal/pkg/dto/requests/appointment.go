package requests

type CreateAppointment struct {
	DoctorID    string `json:"doctor_id" validate:"required"`
	Date        string `json:"date" validate:"required,date_iso"`
	SlotTime    string `json:"slot_time" validate:"required,time_hhmm"`
	InsuranceID string `json:"insurance_id,omitempty"`
}

type ApproveAppointment struct {
	Weight        float64 `json:"weight" validate:"required,gt=0,lte=500"`
	Temperature   float64 `json:"temperature" validate:"required,gte=30,lte=45"`
	BloodPressure string  `json:"blood_pressure,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type RejectAppointment struct {
	Reason string `json:"reason" validate:"required,not_blank"`
}

type GetAvailableSlots struct {
	DoctorID string `validate:"required"`
	Date     string `validate:"required,date_iso"`
}
