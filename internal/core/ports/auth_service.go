package ports

import (
	"context"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
