package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// PatientService implements patient CRUD with the derived balance attached
// to every read.
type PatientService struct {
	patients     ports.PatientRepository
	visits       ports.VisitRepository
	payments     ports.PaymentRepository
	appointments ports.AppointmentRepository
	images       ports.ImageRepository
	logger       zerolog.Logger
}

func NewPatientService(
	patients ports.PatientRepository,
	visits ports.VisitRepository,
	payments ports.PaymentRepository,
	appointments ports.AppointmentRepository,
	images ports.ImageRepository,
	logger zerolog.Logger,
) *PatientService {
	return &PatientService{
		patients:     patients,
		visits:       visits,
		payments:     payments,
		appointments: appointments,
		images:       images,
		logger:       logger,
	}
}

func (s *PatientService) Create(ctx context.Context, input ports.CreatePatientInput) (*domain.Patient, error) {
	patient := &domain.Patient{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		DateOfBirth:    input.DateOfBirth,
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.patients.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("patient_id", created.ID).Msg("patient created")
	return created, nil
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		balance, err := s.balance(ctx, patients[i].ID)
		if err != nil {
			return nil, err
		}
		patients[i].BalanceJOD = balance
	}
	return patients, nil
}

func (s *PatientService) Get(ctx context.Context, id int) (*domain.Patient, error) {
	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	balance, err := s.balance(ctx, id)
	if err != nil {
		return nil, err
	}
	patient.BalanceJOD = balance
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, id int, input ports.UpdatePatientInput) (*domain.Patient, error) {
	updated, err := s.patients.Update(ctx, id, ports.PatientUpdate{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		DateOfBirth:    input.DateOfBirth,
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
		Notes:          input.Notes,
	})
	if err != nil {
		return nil, err
	}
	balance, err := s.balance(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.BalanceJOD = balance
	return updated, nil
}

// Delete removes the patient together with their appointments, payments,
// images and visits.
func (s *PatientService) Delete(ctx context.Context, id int) error {
	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.appointments.DeleteByPatient(ctx, id); err != nil {
		return err
	}
	if err := s.payments.DeleteByPatient(ctx, id); err != nil {
		return err
	}
	if err := s.images.DeleteByPatient(ctx, id); err != nil {
		return err
	}
	if err := s.visits.DeleteByPatient(ctx, id); err != nil {
		return err
	}
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("patient_id", id).Msg("patient deleted")
	return nil
}

// balance is total visit cost minus total payments, rounded to fils.
func (s *PatientService) balance(ctx context.Context, patientID int) (float64, error) {
	cost, err := s.visits.TotalCostByPatient(ctx, patientID)
	if err != nil {
		return 0, err
	}
	paid, err := s.payments.TotalPaidByPatient(ctx, patientID)
	if err != nil {
		return 0, err
	}
	return math.Round((cost-paid)*100) / 100, nil
}
