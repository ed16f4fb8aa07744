package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// VisitService implements treatment visits. Line items are priced from the
// procedure list at creation time, so later price changes never rewrite
// history.
type VisitService struct {
	visits     ports.VisitRepository
	patients   ports.PatientRepository
	users      ports.UserRepository
	procedures ports.ProcedureRepository
	logger     zerolog.Logger
}

func NewVisitService(
	visits ports.VisitRepository,
	patients ports.PatientRepository,
	users ports.UserRepository,
	procedures ports.ProcedureRepository,
	logger zerolog.Logger,
) *VisitService {
	return &VisitService{visits: visits, patients: patients, users: users, procedures: procedures, logger: logger}
}

func (s *VisitService) Create(ctx context.Context, input ports.CreateVisitInput) (*domain.Visit, error) {
	patient, err := s.patients.FindByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.users.FindByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.VisitProcedure, 0, len(input.Procedures))
	for _, item := range input.Procedures {
		procedure, err := s.procedures.FindByID(ctx, item.ProcedureID)
		if err != nil {
			return nil, err
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lines = append(lines, domain.VisitProcedure{
			ProcedureID: procedure.ID,
			Name:        procedure.Name,
			PriceJOD:    procedure.PriceJOD,
			Quantity:    quantity,
		})
	}

	status := input.Status
	if status == "" {
		status = domain.VisitInProgress
	}

	now := time.Now().UTC()
	visit := &domain.Visit{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.FullName,
		VisitDate:   now,
		Status:      status,
		Notes:       input.Notes,
		Procedures:  lines,
		CreatedAt:   now,
	}
	visit.TotalCostJOD = visit.TotalCost()

	created, err := s.visits.Create(ctx, visit)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("visit_id", created.ID).
		Int("patient_id", created.PatientID).
		Float64("total_cost_jod", created.TotalCostJOD).
		Msg("visit created")
	return created, nil
}

func (s *VisitService) List(ctx context.Context, patientID int) ([]domain.Visit, error) {
	return s.visits.List(ctx, patientID)
}

func (s *VisitService) Update(ctx context.Context, id int, input ports.UpdateVisitInput) (*domain.Visit, error) {
	return s.visits.Update(ctx, id, ports.VisitUpdate{Status: input.Status, Notes: input.Notes})
}
