package handler

import "github.com/loopservices/talent-platform/internal/core/domain"

// --- Request / Response types ---

type experienceRequest struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type educationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type certificationRequest struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
	URL    string `json:"url" validate:"omitempty,url"`
}

type updateProfileRequest struct {
	FirstName      string                 `json:"firstName"`
	LastName       string                 `json:"lastName"`
	Phone          string                 `json:"phone"`
	Location       string                 `json:"location"`
	Headline       string                 `json:"headline"`
	Summary        string                 `json:"summary"`
	PortfolioURL   string                 `json:"portfolioUrl" validate:"omitempty,url"`
	LinkedinURL    string                 `json:"linkedinUrl"  validate:"omitempty,url"`
	GithubURL      string                 `json:"githubUrl"    validate:"omitempty,url"`
	Skills         []string               `json:"skills"`
	Experience     []experienceRequest    `json:"experience"`
	Education      []educationRequest     `json:"education"`
	Certifications []certificationRequest `json:"certifications"`
	ExpectedRate   float64                `json:"expectedRate" validate:"omitempty,gt=0"`
	Availability   string                 `json:"availability"`
	Timezone       string                 `json:"timezone"`
	Languages      []string               `json:"languages"`
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,oneof=UNDER_REVIEW APPROVED REJECTED REQUIRES_CHANGES"`
	Notes  string `json:"notes"`
}

type profileResponse struct {
	Profile *domain.ApplicantProfile `json:"profile"`
}

type applicantListResponse struct {
	Applicants []*domain.ApplicantProfile `json:"applicants"`
}

type historyResponse struct {
	Events []domain.AuditEvent `json:"events"`
}
