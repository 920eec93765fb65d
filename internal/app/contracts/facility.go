package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, request *requests.CreateHospital) (*responses.Hospital, error)
	GetHospitals(ctx context.Context) ([]responses.Hospital, error)
	GetHospitalByID(ctx context.Context, hospitalID string) (*responses.Hospital, error)
	UpdateHospital(ctx context.Context, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error)
	DeleteHospital(ctx context.Context, hospitalID string) error
	AssignDepartment(ctx context.Context, hospitalID string, request *requests.AssignDepartment) error
	GetHospitalDepartments(ctx context.Context, hospitalID string) ([]responses.Department, error)
}

type HospitalRepository interface {
	CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error)
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	FindAll(ctx context.Context) ([]models.Hospital, error)
	UpdateHospital(ctx context.Context, hospital *models.Hospital) error
	DeleteByID(ctx context.Context, hospitalID string) error
}

type DepartmentUsecase interface {
	CreateDepartment(ctx context.Context, request *requests.CreateDepartment) (*responses.Department, error)
	GetDepartments(ctx context.Context) ([]responses.Department, error)
	GetDepartmentByID(ctx context.Context, departmentID string) (*responses.Department, error)
	UpdateDepartment(ctx context.Context, departmentID string, request *requests.UpdateDepartment) (*responses.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
}

type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department *models.Department) (string, error)
	FindByID(ctx context.Context, departmentID string) (*models.Department, error)
	FindAll(ctx context.Context) ([]models.Department, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteByID(ctx context.Context, departmentID string) error
}

type HospitalDepartmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *models.HospitalDepartment) (string, error)
	FindByHospitalAndDepartment(ctx context.Context, hospitalID, departmentID string) (*models.HospitalDepartment, error)
	FindByHospitalID(ctx context.Context, hospitalID string) ([]models.HospitalDepartment, error)
}

type PharmacyUsecase interface {
	CreatePharmacy(ctx context.Context, request *requests.CreatePharmacy) (*responses.Pharmacy, error)
	GetPharmacies(ctx context.Context) ([]responses.Pharmacy, error)
	GetPharmacyByID(ctx context.Context, pharmacyID string) (*responses.Pharmacy, error)
	DeletePharmacy(ctx context.Context, pharmacyID string) error
}

type PharmacyRepository interface {
	CreatePharmacy(ctx context.Context, pharmacy *models.Pharmacy) (string, error)
	FindByID(ctx context.Context, pharmacyID string) (*models.Pharmacy, error)
	FindAll(ctx context.Context) ([]models.Pharmacy, error)
	DeleteByID(ctx context.Context, pharmacyID string) error
}

type MedicationUsecase interface {
	CreateMedication(ctx context.Context, request *requests.CreateMedication) (*responses.Medication, error)
	GetMedications(ctx context.Context, pharmacyID string) ([]responses.Medication, error)
	GetMedicationByID(ctx context.Context, medicationID string) (*responses.Medication, error)
	UpdateMedication(ctx context.Context, medicationID string, request *requests.UpdateMedication) (*responses.Medication, error)
	DeleteMedication(ctx context.Context, medicationID string) error
}

type MedicationRepository interface {
	CreateMedication(ctx context.Context, medication *models.Medication) (string, error)
	FindByID(ctx context.Context, medicationID string) (*models.Medication, error)
	FindAll(ctx context.Context) ([]models.Medication, error)
	FindByPharmacyID(ctx context.Context, pharmacyID string) ([]models.Medication, error)
	UpdateMedication(ctx context.Context, medication *models.Medication) error
	DeleteByID(ctx context.Context, medicationID string) error
}
