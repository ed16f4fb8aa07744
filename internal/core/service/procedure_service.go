package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// ProcedureService implements the clinic price list.
type ProcedureService struct {
	procedures ports.ProcedureRepository
	logger     zerolog.Logger
}

func NewProcedureService(procedures ports.ProcedureRepository, logger zerolog.Logger) *ProcedureService {
	return &ProcedureService{procedures: procedures, logger: logger}
}

func (s *ProcedureService) Create(ctx context.Context, input ports.CreateProcedureInput) (*domain.Procedure, error) {
	procedure := &domain.Procedure{
		Name:        input.Name,
		PriceJOD:    input.PriceJOD,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.procedures.Create(ctx, procedure)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("procedure_id", created.ID).Str("name", created.Name).Msg("procedure created")
	return created, nil
}

func (s *ProcedureService) List(ctx context.Context) ([]domain.Procedure, error) {
	return s.procedures.List(ctx)
}

func (s *ProcedureService) Update(ctx context.Context, id int, input ports.UpdateProcedureInput) (*domain.Procedure, error) {
	return s.procedures.Update(ctx, id, ports.ProcedureUpdate{
		Name:        input.Name,
		PriceJOD:    input.PriceJOD,
		Description: input.Description,
	})
}

func (s *ProcedureService) Delete(ctx context.Context, id int) error {
	return s.procedures.Delete(ctx, id)
}
