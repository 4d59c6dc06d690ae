package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopservices/talent-platform/internal/api/metrics"
	"github.com/loopservices/talent-platform/internal/core/domain"
	"github.com/loopservices/talent-platform/internal/core/ports"
)

// AuditTrail is the interface the handler uses to record application
// lifecycle events and to serve their history.
type AuditTrail interface {
	Record(event domain.AuditEvent)
	History(ctx context.Context, applicantID string) ([]domain.AuditEvent, error)
}

// ApplicantHandler handles the applicant vetting surface: the applicant's
// own profile and uploads plus the admin review queue.
type ApplicantHandler struct {
	service ports.ApplicantService
	audit   AuditTrail
}

func NewApplicantHandler(service ports.ApplicantService, audit AuditTrail) *ApplicantHandler {
	return &ApplicantHandler{service: service, audit: audit}
}

// GetProfile returns the caller's applicant profile, creating a draft on
// first access.
//
// @Summary      Get own applicant profile
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Router       /applicants/profile [get]
func (h *ApplicantHandler) GetProfile(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// UpdateProfile overwrites the editable profile fields.
//
// @Summary      Update own applicant profile
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  profileResponse
// @Failure      422   {object}  map[string]string
// @Router       /applicants/profile [put]
func (h *ApplicantHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Request().Context(), userID, toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// Upload stores a resume or video CV sent as multipart form data.
//
// @Summary      Upload a resume or video CV
// @Tags         applicants
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file    true  "The artifact"
// @Param        type  formData  string  true  "resume or videoCv"
// @Success      200   {object}  profileResponse
// @Failure      413   {object}  map[string]string
// @Router       /applicants/upload [post]
func (h *ApplicantHandler) Upload(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	kind := ports.UploadKind(c.FormValue("type"))
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	profile, err := h.service.Upload(c.Request().Context(), userID, kind, fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		return err
	}

	metrics.ApplicantUploadsTotal.WithLabelValues(string(kind)).Inc()
	metrics.ApplicantUploadBytes.Observe(float64(fileHeader.Size))
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// Submit moves the caller's application into the review queue.
//
// @Summary      Submit application for review
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      422  {object}  map[string]string
// @Router       /applicants/submit [post]
func (h *ApplicantHandler) Submit(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Submit(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	h.audit.Record(domain.AuditEvent{
		ApplicantID: profile.ID,
		Actor:       userID,
		Action:      domain.AuditSubmitted,
		Status:      profile.Status,
	})
	metrics.ApplicantSubmissionsTotal.Inc()
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// ListAll returns every applicant profile for the admin console.
//
// @Summary      List all applicants
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicantListResponse
// @Router       /applicants/admin/all [get]
func (h *ApplicantHandler) ListAll(c echo.Context) error {
	applicants, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if applicants == nil {
		applicants = []*domain.ApplicantProfile{}
	}
	return c.JSON(http.StatusOK, applicantListResponse{Applicants: applicants})
}

// Review applies an admin decision to a submitted application.
//
// @Summary      Review an application
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Applicant profile id"
// @Param        body  body      reviewRequest  true  "Decision"
// @Success      200   {object}  profileResponse
// @Failure      422   {object}  map[string]string
// @Router       /applicants/admin/{id}/review [put]
func (h *ApplicantHandler) Review(c echo.Context) error {
	adminID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Review(c.Request().Context(), c.Param("id"), domain.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}

	h.audit.Record(domain.AuditEvent{
		ApplicantID: profile.ID,
		Actor:       adminID,
		Action:      domain.AuditReviewed,
		Status:      profile.Status,
		Notes:       req.Notes,
	})
	metrics.ApplicantReviewsTotal.WithLabelValues(string(profile.Status)).Inc()
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// History returns the audit trail of an application, oldest first.
//
// @Summary      Application history
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Applicant profile id"
// @Success      200  {object}  historyResponse
// @Router       /applicants/admin/{id}/history [get]
func (h *ApplicantHandler) History(c echo.Context) error {
	events, err := h.audit.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.AuditEvent{}
	}
	return c.JSON(http.StatusOK, historyResponse{Events: events})
}

func toUpdateInput(req updateProfileRequest) ports.UpdateProfileInput {
	input := ports.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Location:     req.Location,
		Headline:     req.Headline,
		Summary:      req.Summary,
		PortfolioURL: req.PortfolioURL,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		Skills:       req.Skills,
		ExpectedRate: req.ExpectedRate,
		Availability: req.Availability,
		Timezone:     req.Timezone,
		Languages:    req.Languages,
	}
	for _, e := range req.Experience {
		input.Experience = append(input.Experience, domain.ExperienceEntry(e))
	}
	for _, e := range req.Education {
		input.Education = append(input.Education, domain.EducationEntry(e))
	}
	for _, cert := range req.Certifications {
		input.Certifications = append(input.Certifications, domain.Certification(cert))
	}
	return input
}
