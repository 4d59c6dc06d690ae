package domain

import (
	"errors"
	"time"
)

// ApplicationStatus tracks an applicant through the vetting pipeline.
type ApplicationStatus string

const (
	StatusDraft           ApplicationStatus = "DRAFT"
	StatusSubmitted       ApplicationStatus = "SUBMITTED"
	StatusUnderReview     ApplicationStatus = "UNDER_REVIEW"
	StatusApproved        ApplicationStatus = "APPROVED"
	StatusRejected        ApplicationStatus = "REJECTED"
	StatusRequiresChanges ApplicationStatus = "REQUIRES_CHANGES"
)

var ErrProfileNotFound = errors.New("applicant profile not found")
var ErrInvalidTransition = errors.New("invalid application status transition")

// validTransitions encodes the vetting pipeline. An applicant submits a
// draft (or a returned application); only submitted or in-review
// applications can be decided by an admin.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusDraft:           {StatusSubmitted},
	StatusRequiresChanges: {StatusSubmitted},
	StatusSubmitted:       {StatusUnderReview, StatusApproved, StatusRejected, StatusRequiresChanges},
	StatusUnderReview:     {StatusApproved, StatusRejected, StatusRequiresChanges},
}

// CanTransition reports whether moving from one application status to
// another is legal.
func CanTransition(from, to ApplicationStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ReviewDecision reports whether s is a status an admin may assign when
// reviewing an application.
func ReviewDecision(s ApplicationStatus) bool {
	switch s {
	case StatusUnderReview, StatusApproved, StatusRejected, StatusRequiresChanges:
		return true
	}
	return false
}

// Terminal reports whether the application can no longer be edited by the
// applicant.
func Terminal(s ApplicationStatus) bool {
	return s == StatusApproved || s == StatusRejected
}

// ExperienceEntry is one item of an applicant's work history.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one item of an applicant's education history.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Description string `json:"description,omitempty"`
}

// Certification is one professional certification held by an applicant.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
	URL    string `json:"url,omitempty"`
}

// ApplicantProfile is the full vetting dossier an applicant builds before
// submitting. Created empty (DRAFT) on first access and filled in over
// multiple edits.
type ApplicantProfile struct {
	ID             string            `json:"id"`
	UserID         string            `json:"-"`
	FirstName      string            `json:"firstName,omitempty"`
	LastName       string            `json:"lastName,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Location       string            `json:"location,omitempty"`
	Headline       string            `json:"headline,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	ResumeURL      string            `json:"resumeUrl,omitempty"`
	VideoCvURL     string            `json:"videoCvUrl,omitempty"`
	PortfolioURL   string            `json:"portfolioUrl,omitempty"`
	LinkedinURL    string            `json:"linkedinUrl,omitempty"`
	GithubURL      string            `json:"githubUrl,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	ExpectedRate   float64           `json:"expectedRate,omitempty"`
	Availability   string            `json:"availability,omitempty"`
	Timezone       string            `json:"timezone,omitempty"`
	Languages      []string          `json:"languages"`
	Status         ApplicationStatus `json:"status"`
	AdminNotes     string            `json:"adminNotes,omitempty"`
	SubmittedAt    *time.Time        `json:"submittedAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
