package ports

import (
	"context"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// CreateAppointmentInput carries the fields for a new appointment.
type CreateAppointmentInput struct {
	PatientID       int
	DoctorID        int
	AppointmentDate string
	AppointmentTime string
	DurationMinutes int
	Status          domain.AppointmentStatus
	Notes           string
}

// UpdateAppointmentInput is a partial update; nil fields are left untouched.
type UpdateAppointmentInput struct {
	AppointmentDate *string
	AppointmentTime *string
	DurationMinutes *int
	Status          *domain.AppointmentStatus
	Notes           *string
}

// ListAppointmentsInput carries the caller identity alongside the filters so
// the service can scope doctors to their own schedule.
type ListAppointmentsInput struct {
	CallerID   int
	CallerRole domain.Role
	DoctorID   int    // 0 = all doctors
	Date       string // empty = all dates
}

// AppointmentService covers appointment scheduling.
type AppointmentService interface {
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context, input ListAppointmentsInput) ([]domain.Appointment, error)
	Update(ctx context.Context, id int, input UpdateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id int) error
}

// AppointmentUpdate is the repository-level partial update.
type AppointmentUpdate struct {
	AppointmentDate *string
	AppointmentTime *string
	DurationMinutes *int
	Status          *domain.AppointmentStatus
	Notes           *string
}

// AppointmentFilter narrows List results; zero values mean "no filter".
type AppointmentFilter struct {
	DoctorID int
	Date     string
}

// AppointmentRepository persists appointments with denormalized names.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id int) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	Update(ctx context.Context, id int, update AppointmentUpdate) (*domain.Appointment, error)
	Delete(ctx context.Context, id int) error
	DeleteByPatient(ctx context.Context, patientID int) error
}
