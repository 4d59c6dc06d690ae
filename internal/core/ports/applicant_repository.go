package ports

import (
	"context"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

// ApplicantRepository defines the interface for applicant profile persistence.
type ApplicantRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.ApplicantProfile, error)
	FindByID(ctx context.Context, id string) (*domain.ApplicantProfile, error)
	Create(ctx context.Context, profile *domain.ApplicantProfile) (*domain.ApplicantProfile, error)
	Update(ctx context.Context, profile *domain.ApplicantProfile) error
	FindAll(ctx context.Context) ([]*domain.ApplicantProfile, error)
}
