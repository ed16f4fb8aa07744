package ports

import (
	"context"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// CreateProcedureInput carries the fields for a new price-list entry.
type CreateProcedureInput struct {
	Name        string
	PriceJOD    float64
	Description string
}

// UpdateProcedureInput is a partial update; nil fields are left untouched.
type UpdateProcedureInput struct {
	Name        *string
	PriceJOD    *float64
	Description *string
}

// ProcedureService covers the clinic price list.
type ProcedureService interface {
	Create(ctx context.Context, input CreateProcedureInput) (*domain.Procedure, error)
	List(ctx context.Context) ([]domain.Procedure, error)
	Update(ctx context.Context, id int, input UpdateProcedureInput) (*domain.Procedure, error)
	Delete(ctx context.Context, id int) error
}

// ProcedureUpdate is the repository-level partial update.
type ProcedureUpdate struct {
	Name        *string
	PriceJOD    *float64
	Description *string
}

// ProcedureRepository persists price-list entries.
type ProcedureRepository interface {
	Create(ctx context.Context, procedure *domain.Procedure) (*domain.Procedure, error)
	FindByID(ctx context.Context, id int) (*domain.Procedure, error)
	List(ctx context.Context) ([]domain.Procedure, error)
	Update(ctx context.Context, id int, update ProcedureUpdate) (*domain.Procedure, error)
	Delete(ctx context.Context, id int) error
}
