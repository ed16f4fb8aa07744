package service

import (
	"context"
	"time"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// Map-backed stand-ins for the repository ports. Each stub hands out copies
// so tests cannot mutate stored state through returned pointers.

type stubUserRepo struct {
	nextID int
	users  map[int]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.SessionDurationHours != nil {
		u.SessionDurationHours = *update.SessionDurationHours
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) SetPassword(_ context.Context, id int, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.IsFirstLogin = false
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Time
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	s.revoked[jti] = until
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

type stubPatientRepo struct {
	nextID   int
	patients map[int]*domain.Patient
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[int]*domain.Patient)}
}

func (r *stubPatientRepo) Create(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	r.nextID++
	copy := *patient
	copy.ID = r.nextID
	r.patients[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id int) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]domain.Patient, error) {
	out := []domain.Patient{}
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, id int, update ports.PatientUpdate) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Email != nil {
		p.Email = *update.Email
	}
	if update.Notes != nil {
		p.Notes = *update.Notes
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.patients[id]; !ok {
		return domain.ErrPatientNotFound
	}
	delete(r.patients, id)
	return nil
}

type stubVisitRepo struct {
	nextID    int
	visits    map[int]*domain.Visit
	deletedBy []int
}

func newStubVisitRepo() *stubVisitRepo {
	return &stubVisitRepo{visits: make(map[int]*domain.Visit)}
}

func (r *stubVisitRepo) Create(_ context.Context, visit *domain.Visit) (*domain.Visit, error) {
	r.nextID++
	copy := *visit
	copy.ID = r.nextID
	r.visits[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubVisitRepo) FindByID(_ context.Context, id int) (*domain.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVisitRepo) List(_ context.Context, patientID int) ([]domain.Visit, error) {
	out := []domain.Visit{}
	for _, v := range r.visits {
		if patientID == 0 || v.PatientID == patientID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVisitRepo) Update(_ context.Context, id int, update ports.VisitUpdate) (*domain.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	if update.Status != nil {
		v.Status = *update.Status
	}
	if update.Notes != nil {
		v.Notes = *update.Notes
	}
	clone := *v
	return &clone, nil
}

func (r *stubVisitRepo) DeleteByPatient(_ context.Context, patientID int) error {
	r.deletedBy = append(r.deletedBy, patientID)
	for id, v := range r.visits {
		if v.PatientID == patientID {
			delete(r.visits, id)
		}
	}
	return nil
}

func (r *stubVisitRepo) TotalCostByPatient(_ context.Context, patientID int) (float64, error) {
	var total float64
	for _, v := range r.visits {
		if v.PatientID == patientID {
			total += v.TotalCostJOD
		}
	}
	return total, nil
}

type stubPaymentRepo struct {
	nextID    int
	payments  map[int]*domain.Payment
	deletedBy []int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[int]*domain.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	copy := *payment
	copy.ID = r.nextID
	r.payments[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubPaymentRepo) List(_ context.Context, patientID int) ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range r.payments {
		if patientID == 0 || p.PatientID == patientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) DeleteByPatient(_ context.Context, patientID int) error {
	r.deletedBy = append(r.deletedBy, patientID)
	for id, p := range r.payments {
		if p.PatientID == patientID {
			delete(r.payments, id)
		}
	}
	return nil
}

func (r *stubPaymentRepo) TotalPaidByPatient(_ context.Context, patientID int) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.PatientID == patientID {
			total += p.AmountJOD
		}
	}
	return total, nil
}

type stubAppointmentRepo struct {
	nextID       int
	appointments map[int]*domain.Appointment
	lastFilter   ports.AppointmentFilter
	deletedBy    []int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[int]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.nextID++
	copy := *appointment
	copy.ID = r.nextID
	r.appointments[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id int) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) List(_ context.Context, filter ports.AppointmentFilter) ([]domain.Appointment, error) {
	r.lastFilter = filter
	out := []domain.Appointment{}
	for _, a := range r.appointments {
		if filter.DoctorID > 0 && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.Date != "" && a.AppointmentDate != filter.Date {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, id int, update ports.AppointmentUpdate) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	if update.Status != nil {
		a.Status = *update.Status
	}
	if update.AppointmentDate != nil {
		a.AppointmentDate = *update.AppointmentDate
	}
	if update.AppointmentTime != nil {
		a.AppointmentTime = *update.AppointmentTime
	}
	if update.Notes != nil {
		a.Notes = *update.Notes
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *stubAppointmentRepo) DeleteByPatient(_ context.Context, patientID int) error {
	r.deletedBy = append(r.deletedBy, patientID)
	for id, a := range r.appointments {
		if a.PatientID == patientID {
			delete(r.appointments, id)
		}
	}
	return nil
}

type stubProcedureRepo struct {
	nextID     int
	procedures map[int]*domain.Procedure
}

func newStubProcedureRepo() *stubProcedureRepo {
	return &stubProcedureRepo{procedures: make(map[int]*domain.Procedure)}
}

func (r *stubProcedureRepo) Create(_ context.Context, procedure *domain.Procedure) (*domain.Procedure, error) {
	r.nextID++
	copy := *procedure
	copy.ID = r.nextID
	r.procedures[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubProcedureRepo) FindByID(_ context.Context, id int) (*domain.Procedure, error) {
	p, ok := r.procedures[id]
	if !ok {
		return nil, domain.ErrProcedureNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProcedureRepo) List(_ context.Context) ([]domain.Procedure, error) {
	out := []domain.Procedure{}
	for _, p := range r.procedures {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProcedureRepo) Update(_ context.Context, id int, update ports.ProcedureUpdate) (*domain.Procedure, error) {
	p, ok := r.procedures[id]
	if !ok {
		return nil, domain.ErrProcedureNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.PriceJOD != nil {
		p.PriceJOD = *update.PriceJOD
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	clone := *p
	return &clone, nil
}

func (r *stubProcedureRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.procedures[id]; !ok {
		return domain.ErrProcedureNotFound
	}
	delete(r.procedures, id)
	return nil
}

type stubImageRepo struct {
	nextID    int
	images    map[int]*domain.MedicalImage
	deletedBy []int
}

func newStubImageRepo() *stubImageRepo {
	return &stubImageRepo{images: make(map[int]*domain.MedicalImage)}
}

func (r *stubImageRepo) Create(_ context.Context, image *domain.MedicalImage) (*domain.MedicalImage, error) {
	r.nextID++
	copy := *image
	copy.ID = r.nextID
	r.images[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubImageRepo) FindByID(_ context.Context, id int) (*domain.MedicalImage, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	clone := *img
	return &clone, nil
}

func (r *stubImageRepo) ListByPatient(_ context.Context, patientID int) ([]domain.MedicalImage, error) {
	out := []domain.MedicalImage{}
	for _, img := range r.images {
		if img.PatientID == patientID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *stubImageRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.images[id]; !ok {
		return domain.ErrImageNotFound
	}
	delete(r.images, id)
	return nil
}

func (r *stubImageRepo) DeleteByPatient(_ context.Context, patientID int) error {
	r.deletedBy = append(r.deletedBy, patientID)
	for id, img := range r.images {
		if img.PatientID == patientID {
			delete(r.images, id)
		}
	}
	return nil
}
