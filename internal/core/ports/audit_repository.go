package ports

import (
	"context"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

// AuditRepository persists the application history trail.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
	FindByApplicant(ctx context.Context, applicantID string) ([]domain.AuditEvent, error)
}
