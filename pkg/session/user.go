// Package session implements the client-side session layer of the Loop
// Services marketplace: durable token storage, the auth API client, the
// session controller that reconciles persisted credentials with
// server-confirmed identity, and the route authorization gate the
// navigation layer consults before rendering.
package session

// Role is the closed set of account kinds the server issues.
type Role string

const (
	RoleClient    Role = "CLIENT"
	RoleTalent    Role = "TALENT"
	RoleAdmin     Role = "ADMIN"
	RoleApplicant Role = "APPLICANT"
)

// User is the client-side view of the authenticated principal, mirroring
// the /auth wire format.
type User struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	Role             Role              `json:"role"`
	TalentProfile    *TalentProfile    `json:"talentProfile,omitempty"`
	ApplicantProfile *ApplicantProfile `json:"applicantProfile,omitempty"`
}

type TalentProfile struct {
	ID         string   `json:"id"`
	Headline   string   `json:"headline,omitempty"`
	Skills     []string `json:"skills"`
	HourlyRate float64  `json:"hourlyRate,omitempty"`
	Status     string   `json:"status"`
}

type ApplicantProfile struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Headline   string   `json:"headline,omitempty"`
	Skills     []string `json:"skills"`
	Status     string   `json:"status"`
	ResumeURL  string   `json:"resumeUrl,omitempty"`
	VideoCvURL string   `json:"videoCvUrl,omitempty"`
}
