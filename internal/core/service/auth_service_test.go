package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubApplicantRepoForAuth struct {
	profiles map[string]*domain.ApplicantProfile
}

func (r *stubApplicantRepoForAuth) FindByUserID(_ context.Context, userID string) (*domain.ApplicantProfile, error) {
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubApplicantRepoForAuth) FindByID(_ context.Context, _ string) (*domain.ApplicantProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func (r *stubApplicantRepoForAuth) Create(_ context.Context, p *domain.ApplicantProfile) (*domain.ApplicantProfile, error) {
	return p, nil
}

func (r *stubApplicantRepoForAuth) Update(_ context.Context, _ *domain.ApplicantProfile) error {
	return nil
}

func (r *stubApplicantRepoForAuth) FindAll(_ context.Context) ([]*domain.ApplicantProfile, error) {
	return nil, nil
}

type stubThrottle struct {
	allowed  bool
	failures int
	resets   int
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) { return t.allowed, nil }
func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}
func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, nil, "secret", time.Hour)

	token, user, err := svc.Signup(context.Background(), "alice@example.com", "pass123", domain.RoleTalent)
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token on signup")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleTalent {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Signup_DefaultRole(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, nil, "secret", time.Hour)

	_, user, err := svc.Signup(context.Background(), "bob@example.com", "pass", "")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected default role CLIENT, got %s", user.Role)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, nil, "secret", time.Hour)

	if _, _, err := svc.Signup(context.Background(), "", "pass", domain.RoleClient); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "x@example.com", "pass", "WIZARD"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "x@example.com", "pass", domain.RoleAdmin); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole for admin self-signup, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, nil, "secret", time.Hour)

	_, _, _ = svc.Signup(context.Background(), "bob@example.com", "pass", domain.RoleClient)
	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "pass2", domain.RoleClient); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	throttle := &stubThrottle{allowed: true}
	svc := NewAuthService(repo, nil, throttle, "secret", time.Hour)

	if _, _, err := svc.Signup(context.Background(), "carol@example.com", "s3cret", domain.RoleApplicant); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleApplicant) {
		t.Fatalf("expected role %s, got %v", domain.RoleApplicant, claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAuthRepo()
	throttle := &stubThrottle{allowed: true}
	svc := NewAuthService(repo, nil, throttle, "secret", time.Hour)

	_, _, _ = svc.Signup(context.Background(), "dave@example.com", "goodpass", domain.RoleClient)
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected failure recorded, got %d", throttle.failures)
	}
}

func TestAuthService_Login_UnknownEmailHidden(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, nil, "secret", time.Hour)

	// Unknown accounts must look identical to bad passwords.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubAuthRepo()
	throttle := &stubThrottle{allowed: false}
	svc := NewAuthService(repo, nil, throttle, "secret", time.Hour)

	_, _, _ = svc.Signup(context.Background(), "eve@example.com", "pass", domain.RoleClient)
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_CurrentUser_AttachesApplicantProfile(t *testing.T) {
	repo := newStubAuthRepo()
	applicants := &stubApplicantRepoForAuth{profiles: make(map[string]*domain.ApplicantProfile)}
	svc := NewAuthService(repo, applicants, nil, "secret", time.Hour)

	_, user, err := svc.Signup(context.Background(), "fred@example.com", "pass", domain.RoleApplicant)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	applicants.profiles[user.ID] = &domain.ApplicantProfile{ID: "ap-1", UserID: user.ID, Status: domain.StatusDraft}

	got, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if got.ApplicantProfile == nil || got.ApplicantProfile.ID != "ap-1" {
		t.Fatalf("expected applicant profile attached, got %+v", got.ApplicantProfile)
	}
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, nil, "secret", time.Hour)

	if _, err := svc.CurrentUser(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
