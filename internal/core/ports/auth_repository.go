package ports

import (
	"context"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// LoginThrottle limits repeated failed login attempts per account.
type LoginThrottle interface {
	// Allow reports whether another attempt is permitted for the email.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, email string) error
}
