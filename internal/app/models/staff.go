package models

type Doctor struct {
	ID                  string   `bson:"_id,omitempty"`
	UserID              string   `bson:"userId"`
	HospitalID          string   `bson:"hospitalId"`
	DepartmentID        string   `bson:"departmentId"`
	Specialty           string   `bson:"specialty,omitempty"`
	ConsultationFee     float64  `bson:"consultationFee"`
	WorkDays            []string `bson:"workDays"`
	StartTime           string   `bson:"startTime"`
	EndTime             string   `bson:"endTime"`
	SlotDurationMinutes int      `bson:"slotDurationMinutes"`
	TimeModel           `bson:",inline"`
}

type Nurse struct {
	ID           string `bson:"_id,omitempty"`
	UserID       string `bson:"userId"`
	HospitalID   string `bson:"hospitalId"`
	DepartmentID string `bson:"departmentId"`
	TimeModel    `bson:",inline"`
}
