package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// RegisterInput carries the fields collected by the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration and role-scoped login.
type AuthService interface {
	// Register creates a new account. It fails with domain.ErrUserExists when
	// the email is already taken. Registration never returns a token: the
	// caller logs in separately.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates the email/password pair against accounts of the
	// given role and returns a signed session token plus the identity.
	Login(ctx context.Context, email, password, role string) (string, *domain.User, error)
}
