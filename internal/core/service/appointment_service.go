package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

const defaultAppointmentMinutes = 30

// AppointmentService implements scheduling. Patient and doctor names are
// resolved once at creation and stored with the appointment.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	patients     ports.PatientRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	patients ports.PatientRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients, users: users, logger: logger}
}

func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	patient, err := s.patients.FindByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.users.FindByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.AppointmentScheduled
	}
	minutes := input.DurationMinutes
	if minutes <= 0 {
		minutes = defaultAppointmentMinutes
	}

	appointment := &domain.Appointment{
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.FullName,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		DurationMinutes: minutes,
		Status:          status,
		Notes:           input.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.appointments.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("appointment_id", created.ID).
		Int("patient_id", created.PatientID).
		Int("doctor_id", created.DoctorID).
		Str("date", created.AppointmentDate).
		Msg("appointment created")
	return created, nil
}

// List applies the caller scoping rule: doctors only ever see their own
// schedule, whatever filters they ask for.
func (s *AppointmentService) List(ctx context.Context, input ports.ListAppointmentsInput) ([]domain.Appointment, error) {
	filter := ports.AppointmentFilter{DoctorID: input.DoctorID, Date: input.Date}
	if input.CallerRole == domain.RoleDoctor {
		filter.DoctorID = input.CallerID
	}
	return s.appointments.List(ctx, filter)
}

func (s *AppointmentService) Update(ctx context.Context, id int, input ports.UpdateAppointmentInput) (*domain.Appointment, error) {
	return s.appointments.Update(ctx, id, ports.AppointmentUpdate{
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		DurationMinutes: input.DurationMinutes,
		Status:          input.Status,
		Notes:           input.Notes,
	})
}

func (s *AppointmentService) Delete(ctx context.Context, id int) error {
	return s.appointments.Delete(ctx, id)
}
