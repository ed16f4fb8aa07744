package ports

import (
	"context"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// CreatePatientInput carries the fields for a new patient record.
type CreatePatientInput struct {
	Name           string
	Phone          string
	Email          string
	DateOfBirth    string
	Address        string
	MedicalHistory string
	Notes          string
}

// UpdatePatientInput is a partial update; nil fields are left untouched.
type UpdatePatientInput struct {
	Name           *string
	Phone          *string
	Email          *string
	DateOfBirth    *string
	Address        *string
	MedicalHistory *string
	Notes          *string
}

// PatientService covers patient CRUD. Every read carries the derived
// balance; Delete cascades over the patient's dependent records.
type PatientService interface {
	Create(ctx context.Context, input CreatePatientInput) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id int) (*domain.Patient, error)
	Update(ctx context.Context, id int, input UpdatePatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id int) error
}

// PatientUpdate is the repository-level partial update.
type PatientUpdate struct {
	Name           *string
	Phone          *string
	Email          *string
	DateOfBirth    *string
	Address        *string
	MedicalHistory *string
	Notes          *string
}

// PatientRepository persists patient records.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id int) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Update(ctx context.Context, id int, update PatientUpdate) (*domain.Patient, error)
	Delete(ctx context.Context, id int) error
}
