package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/loopservices/talent-platform/internal/core/domain"
	"github.com/loopservices/talent-platform/internal/core/ports"
)

// maxUploadSize caps resume and video CV uploads at 100 MB, matching the
// largest recorded video the dashboard produces.
const maxUploadSize = 100 << 20

var ErrUploadTooLarge = fmt.Errorf("upload exceeds %d bytes", maxUploadSize)

// ApplicantService owns the applicant vetting pipeline: draft profile,
// artifact uploads, submission, and admin review.
type ApplicantService struct {
	repo    ports.ApplicantRepository
	objects ports.ObjectStore
	logger  zerolog.Logger
}

func NewApplicantService(repo ports.ApplicantRepository, objects ports.ObjectStore, logger zerolog.Logger) *ApplicantService {
	return &ApplicantService{repo: repo, objects: objects, logger: logger}
}

// GetProfile returns the applicant's profile, creating an empty draft on
// first access so the dashboard always has something to render.
func (s *ApplicantService) GetProfile(ctx context.Context, userID string) (*domain.ApplicantProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if err != domain.ErrProfileNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	draft := &domain.ApplicantProfile{
		ID:        uuid.NewString(),
		UserID:    userID,
		Skills:    []string{},
		Languages: []string{},
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("created draft applicant profile")
	return created, nil
}

// UpdateProfile overwrites the editable fields. Decided applications
// (approved or rejected) are frozen.
func (s *ApplicantService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.ApplicantProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if domain.Terminal(profile.Status) {
		return nil, domain.ErrInvalidTransition
	}

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	profile.Phone = input.Phone
	profile.Location = input.Location
	profile.Headline = input.Headline
	profile.Summary = input.Summary
	profile.PortfolioURL = input.PortfolioURL
	profile.LinkedinURL = input.LinkedinURL
	profile.GithubURL = input.GithubURL
	profile.Skills = emptyIfNil(input.Skills)
	profile.Experience = input.Experience
	profile.Education = input.Education
	profile.Certifications = input.Certifications
	profile.ExpectedRate = input.ExpectedRate
	profile.Availability = input.Availability
	profile.Timezone = input.Timezone
	profile.Languages = emptyIfNil(input.Languages)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Upload stores a resume or video CV in the object store and records its
// URL on the profile. A failed profile write removes the stored object.
func (s *ApplicantService) Upload(ctx context.Context, userID string, kind ports.UploadKind, filename, contentType string, size int64, r io.Reader) (*domain.ApplicantProfile, error) {
	if kind != ports.UploadResume && kind != ports.UploadVideoCv {
		return nil, fmt.Errorf("unknown upload type %q", kind)
	}
	if size <= 0 || size > maxUploadSize {
		return nil, ErrUploadTooLarge
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if domain.Terminal(profile.Status) {
		return nil, domain.ErrInvalidTransition
	}

	key := fmt.Sprintf("applicants/%s/%s/%s%s", profile.ID, kind, uuid.NewString(), path.Ext(filename))
	url, err := s.objects.Put(ctx, key, r, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	switch kind {
	case ports.UploadResume:
		profile.ResumeURL = url
	case ports.UploadVideoCv:
		profile.VideoCvURL = url
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, profile); err != nil {
		// Roll the orphaned object back so the bucket does not accumulate
		// artifacts no profile points at.
		_ = s.objects.Remove(ctx, key)
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("kind", string(kind)).
		Int64("size", size).
		Msg("applicant upload stored")
	return profile, nil
}

// Submit moves a draft (or returned) application into the review queue.
func (s *ApplicantService) Submit(ctx context.Context, userID string) (*domain.ApplicantProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(profile.Status, domain.StatusSubmitted) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	profile.Status = domain.StatusSubmitted
	profile.SubmittedAt = &now
	profile.UpdatedAt = now

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("application submitted")
	return profile, nil
}

// ListAll returns every applicant profile for the admin console.
func (s *ApplicantService) ListAll(ctx context.Context) ([]*domain.ApplicantProfile, error) {
	return s.repo.FindAll(ctx)
}

// Review applies an admin decision to a submitted application.
func (s *ApplicantService) Review(ctx context.Context, applicantID string, status domain.ApplicationStatus, notes string) (*domain.ApplicantProfile, error) {
	if !domain.ReviewDecision(status) {
		return nil, domain.ErrInvalidTransition
	}

	profile, err := s.repo.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(profile.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	profile.Status = status
	profile.AdminNotes = notes
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("applicant_id", applicantID).
		Str("status", string(status)).
		Msg("application reviewed")
	return profile, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
