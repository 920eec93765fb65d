package requests

type CreateDoctor struct {
	UserID              string   `json:"user_id" validate:"required"`
	HospitalID          string   `json:"hospital_id" validate:"required"`
	DepartmentID        string   `json:"department_id" validate:"required"`
	Specialty           string   `json:"specialty,omitempty"`
	ConsultationFee     float64  `json:"consultation_fee" validate:"required,gte=0"`
	WorkDays            []string `json:"work_days" validate:"required,min=1"`
	StartTime           string   `json:"start_time" validate:"required,time_hhmm"`
	EndTime             string   `json:"end_time" validate:"required,time_hhmm"`
	SlotDurationMinutes int      `json:"slot_duration_minutes" validate:"required,gt=0"`
}

type UpdateDoctor struct {
	Specialty           string   `json:"specialty,omitempty"`
	ConsultationFee     *float64 `json:"consultation_fee,omitempty" validate:"omitempty,gte=0"`
	WorkDays            []string `json:"work_days,omitempty"`
	StartTime           string   `json:"start_time,omitempty" validate:"omitempty,time_hhmm"`
	EndTime             string   `json:"end_time,omitempty" validate:"omitempty,time_hhmm"`
	SlotDurationMinutes *int     `json:"slot_duration_minutes,omitempty" validate:"omitempty,gt=0"`
}

type CreateNurse struct {
	UserID       string `json:"user_id" validate:"required"`
	HospitalID   string `json:"hospital_id" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
}
