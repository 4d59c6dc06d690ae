package ports

import (
	"context"
	"io"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

// UploadKind distinguishes the two artifacts an applicant can attach.
type UploadKind string

const (
	UploadResume  UploadKind = "resume"
	UploadVideoCv UploadKind = "videoCv"
)

// UpdateProfileInput carries the editable fields of an applicant profile.
// Slices replace the stored value wholesale; the handler binds the full form.
type UpdateProfileInput struct {
	FirstName      string
	LastName       string
	Phone          string
	Location       string
	Headline       string
	Summary        string
	PortfolioURL   string
	LinkedinURL    string
	GithubURL      string
	Skills         []string
	Experience     []domain.ExperienceEntry
	Education      []domain.EducationEntry
	Certifications []domain.Certification
	ExpectedRate   float64
	Availability   string
	Timezone       string
	Languages      []string
}

type ApplicantService interface {
	GetProfile(ctx context.Context, userID string) (*domain.ApplicantProfile, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.ApplicantProfile, error)
	Upload(ctx context.Context, userID string, kind UploadKind, filename, contentType string, size int64, r io.Reader) (*domain.ApplicantProfile, error)
	Submit(ctx context.Context, userID string) (*domain.ApplicantProfile, error)
	ListAll(ctx context.Context) ([]*domain.ApplicantProfile, error)
	Review(ctx context.Context, applicantID string, status domain.ApplicationStatus, notes string) (*domain.ApplicantProfile, error)
}

// ObjectStore abstracts the bucket where resumes and video CVs live.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}
