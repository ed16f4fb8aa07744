package ports

import (
	"context"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// CreatePaymentInput carries the fields for a received payment. RecordedBy is
// the authenticated caller, never client-supplied.
type CreatePaymentInput struct {
	PatientID  int
	AmountJOD  float64
	Notes      string
	RecordedBy int
}

// PaymentService covers payment recording and history.
type PaymentService interface {
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	// List returns all payments, or only one patient's when patientID > 0.
	List(ctx context.Context, patientID int) ([]domain.Payment, error)
}

// PaymentRepository persists payments. TotalPaidByPatient feeds the patient
// balance calculation.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context, patientID int) ([]domain.Payment, error)
	DeleteByPatient(ctx context.Context, patientID int) error
	TotalPaidByPatient(ctx context.Context, patientID int) (float64, error)
}
