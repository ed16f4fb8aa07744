package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

const defaultSessionHours = 8

// UserService implements staff account management.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new staff account. Accounts start with the first-login
// flag set so the owner is forced through a password change.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hours := input.SessionDurationHours
	if hours <= 0 {
		hours = defaultSessionHours
	}

	user := &domain.User{
		Username:             input.Username,
		PasswordHash:         string(hash),
		FullName:             input.FullName,
		Role:                 input.Role,
		IsFirstLogin:         true,
		SessionDurationHours: hours,
		CreatedAt:            time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{
		FullName:             input.FullName,
		SessionDurationHours: input.SessionDurationHours,
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	return s.users.Update(ctx, id, update)
}

// Delete removes an account; removing your own account is refused so the
// clinic can never lock out its last administrator mid-session.
func (s *UserService) Delete(ctx context.Context, id, callerID int) error {
	if id == callerID {
		return domain.ErrSelfDelete
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) ListDoctors(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleDoctor)
}
