package domain

import "time"

// AuditAction names what happened to an application.
type AuditAction string

const (
	AuditSubmitted AuditAction = "SUBMITTED"
	AuditReviewed  AuditAction = "REVIEWED"
)

// AuditEvent is one entry in an application's history trail. Actor is the
// user id of whoever caused the change.
type AuditEvent struct {
	ApplicantID string            `json:"applicantId"`
	Actor       string            `json:"actor"`
	Action      AuditAction       `json:"action"`
	Status      ApplicationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	OccurredAt  time.Time         `json:"occurredAt"`
}
