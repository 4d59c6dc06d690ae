package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account kinds. It is fixed at signup and
// determines which routes and operations are reachable.
type Role string

const (
	RoleClient    Role = "CLIENT"
	RoleTalent    Role = "TALENT"
	RoleAdmin     Role = "ADMIN"
	RoleApplicant Role = "APPLICANT"
)

// ValidRole reports whether r is a member of the role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleTalent, RoleAdmin, RoleApplicant:
		return true
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated account in the marketplace.
// At most one of TalentProfile / ApplicantProfile is set, matching the role.
type User struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	PasswordHash     string            `json:"-"`
	Role             Role              `json:"role"`
	TalentProfile    *TalentProfile    `json:"talentProfile,omitempty"`
	ApplicantProfile *ApplicantProfile `json:"applicantProfile,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// TalentProfile is the public-facing profile of an approved talent.
type TalentProfile struct {
	ID         string   `json:"id"`
	Headline   string   `json:"headline,omitempty"`
	Skills     []string `json:"skills"`
	HourlyRate float64  `json:"hourlyRate,omitempty"`
	Status     string   `json:"status"`
}
