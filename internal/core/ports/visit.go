package ports

import (
	"context"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// VisitProcedureInput references a price-list entry performed during a visit.
type VisitProcedureInput struct {
	ProcedureID int
	Quantity    int
}

// CreateVisitInput carries the fields for a new visit. The procedure list is
// resolved against the price list at creation and frozen afterwards.
type CreateVisitInput struct {
	PatientID  int
	DoctorID   int
	Status     domain.VisitStatus
	Notes      string
	Procedures []VisitProcedureInput
}

// UpdateVisitInput is a partial update; only status and notes are mutable.
type UpdateVisitInput struct {
	Status *domain.VisitStatus
	Notes  *string
}

// VisitService covers treatment visits and their billed line items.
type VisitService interface {
	Create(ctx context.Context, input CreateVisitInput) (*domain.Visit, error)
	List(ctx context.Context, patientID int) ([]domain.Visit, error)
	Update(ctx context.Context, id int, input UpdateVisitInput) (*domain.Visit, error)
}

// VisitUpdate is the repository-level partial update.
type VisitUpdate struct {
	Status *domain.VisitStatus
	Notes  *string
}

// VisitRepository persists visits. TotalCostByPatient feeds the patient
// balance calculation.
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	FindByID(ctx context.Context, id int) (*domain.Visit, error)
	// List returns all visits, or only one patient's when patientID > 0.
	List(ctx context.Context, patientID int) ([]domain.Visit, error)
	Update(ctx context.Context, id int, update VisitUpdate) (*domain.Visit, error)
	DeleteByPatient(ctx context.Context, patientID int) error
	TotalCostByPatient(ctx context.Context, patientID int) (float64, error)
}
