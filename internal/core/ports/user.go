package ports

import (
	"context"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// CreateUserInput carries the fields for a new staff account.
type CreateUserInput struct {
	Username             string
	Password             string
	FullName             string
	Role                 domain.Role
	SessionDurationHours int
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	FullName             *string
	SessionDurationHours *int
	Password             *string
}

// UserService covers admin-only account management plus the doctors listing
// available to any authenticated caller.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error)
	// Delete refuses to remove the caller's own account.
	Delete(ctx context.Context, id, callerID int) error
	ListDoctors(ctx context.Context) ([]domain.User, error)
}

// UserUpdate is the repository-level partial update (already hashed).
type UserUpdate struct {
	FullName             *string
	SessionDurationHours *int
	PasswordHash         *string
}

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, id int, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int) error
	// SetPassword replaces the hash and clears the first-login flag.
	SetPassword(ctx context.Context, id int, passwordHash string) error
}
