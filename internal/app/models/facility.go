package models

type Hospital struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Address   string `bson:"address"`
	Phone     string `bson:"phone,omitempty"`
	TimeModel `bson:",inline"`
}

type Department struct {
	ID          string `bson:"_id,omitempty"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
	TimeModel   `bson:",inline"`
}

// HospitalDepartment links a department to a hospital. The pair is unique.
type HospitalDepartment struct {
	ID           string `bson:"_id,omitempty"`
	HospitalID   string `bson:"hospitalId"`
	DepartmentID string `bson:"departmentId"`
	TimeModel    `bson:",inline"`
}

type Pharmacy struct {
	ID         string `bson:"_id,omitempty"`
	HospitalID string `bson:"hospitalId"`
	Name       string `bson:"name"`
	Phone      string `bson:"phone,omitempty"`
	TimeModel  `bson:",inline"`
}
