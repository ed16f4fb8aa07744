package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// PaymentService implements payment recording and history.
type PaymentService struct {
	payments ports.PaymentRepository
	patients ports.PatientRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPaymentService(
	payments ports.PaymentRepository,
	patients ports.PatientRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{payments: payments, patients: patients, users: users, logger: logger}
}

func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	patient, err := s.patients.FindByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	recorder, err := s.users.FindByID(ctx, input.RecordedBy)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		PatientID:      patient.ID,
		PatientName:    patient.Name,
		AmountJOD:      input.AmountJOD,
		PaymentDate:    now,
		RecordedBy:     recorder.ID,
		RecordedByName: recorder.FullName,
		Notes:          input.Notes,
		CreatedAt:      now,
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("payment_id", created.ID).
		Int("patient_id", created.PatientID).
		Float64("amount_jod", created.AmountJOD).
		Msg("payment recorded")
	return created, nil
}

func (s *PaymentService) List(ctx context.Context, patientID int) ([]domain.Payment, error) {
	return s.payments.List(ctx, patientID)
}
