package responses

type Hospital struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Insurance struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

type Pharmacy struct {
	ID         string `json:"id"`
	HospitalID string `json:"hospital_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
}

type Medication struct {
	ID            string  `json:"id"`
	PharmacyID    string  `json:"pharmacy_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	UnitPrice     float64 `json:"unit_price"`
	StockQuantity int     `json:"stock_quantity"`
}

type Doctor struct {
	ID                  string   `json:"id"`
	UserID              string   `json:"user_id"`
	FullName            string   `json:"full_name,omitempty"`
	HospitalID          string   `json:"hospital_id"`
	DepartmentID        string   `json:"department_id"`
	Specialty           string   `json:"specialty,omitempty"`
	ConsultationFee     float64  `json:"consultation_fee"`
	WorkDays            []string `json:"work_days"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
}

type Nurse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name,omitempty"`
	HospitalID   string `json:"hospital_id"`
	DepartmentID string `json:"department_id"`
}
