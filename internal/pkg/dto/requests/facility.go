package requests

type CreateHospital struct {
	Name    string `json:"name" validate:"required,not_blank"`
	Address string `json:"address" validate:"required,not_blank"`
	Phone   string `json:"phone,omitempty"`
}

type UpdateHospital struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type CreateDepartment struct {
	Name        string `json:"name" validate:"required,not_blank"`
	Description string `json:"description,omitempty"`
}

type UpdateDepartment struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type AssignDepartment struct {
	DepartmentID string `json:"department_id" validate:"required"`
}

type CreateInsurance struct {
	Name               string  `json:"name" validate:"required,not_blank"`
	CoveragePercentage float64 `json:"coverage_percentage" validate:"gte=0,lte=100"`
}

type UpdateInsurance struct {
	Name               string   `json:"name,omitempty"`
	CoveragePercentage *float64 `json:"coverage_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type CreatePharmacy struct {
	HospitalID string `json:"hospital_id" validate:"required"`
	Name       string `json:"name" validate:"required,not_blank"`
	Phone      string `json:"phone,omitempty"`
}

type CreateMedication struct {
	PharmacyID    string  `json:"pharmacy_id" validate:"required"`
	Name          string  `json:"name" validate:"required,not_blank"`
	Description   string  `json:"description,omitempty"`
	UnitPrice     float64 `json:"unit_price" validate:"required,gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

type UpdateMedication struct {
	Name          string   `json:"name,omitempty"`
	Description   string   `json:"description,omitempty"`
	UnitPrice     *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
}
