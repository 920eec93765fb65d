package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	GetDoctors(ctx context.Context, departmentID string) ([]responses.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByDepartmentID(ctx context.Context, departmentID string) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
}

type NurseUsecase interface {
	CreateNurse(ctx context.Context, request *requests.CreateNurse) (*responses.Nurse, error)
	GetNurses(ctx context.Context) ([]responses.Nurse, error)
	DeleteNurse(ctx context.Context, nurseID string) error
}

type NurseRepository interface {
	CreateNurse(ctx context.Context, nurse *models.Nurse) (string, error)
	FindByID(ctx context.Context, nurseID string) (*models.Nurse, error)
	FindByUserID(ctx context.Context, userID string) (*models.Nurse, error)
	FindAll(ctx context.Context) ([]models.Nurse, error)
	DeleteByID(ctx context.Context, nurseID string) error
}
