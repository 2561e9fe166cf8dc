package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail retrieves a user by email regardless of role. Used for the
	// duplicate-email pre-check at registration.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailAndRole retrieves a user matching both email and role.
	// Login queries are always role-scoped: a teacher account can not log in
	// through the student flow.
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
