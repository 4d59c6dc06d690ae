package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/loopservices/talent-platform/internal/core/domain"
	"github.com/loopservices/talent-platform/internal/core/ports"
)

// AuthService implements signup, login, and current-user resolution.
type AuthService struct {
	repo       ports.AuthRepository
	applicants ports.ApplicantRepository
	throttle   ports.LoginThrottle
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthService(repo ports.AuthRepository, applicants ports.ApplicantRepository, throttle ports.LoginThrottle, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:       repo,
		applicants: applicants,
		throttle:   throttle,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

// Signup creates an account and logs it in immediately, returning a signed
// token alongside the new user. An empty role defaults to CLIENT; admin
// accounts cannot be self-provisioned.
func (s *AuthService) Signup(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleClient
	}
	if !domain.ValidRole(role) || role == domain.RoleAdmin {
		return "", nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies the email/password pair and returns a signed token.
// Unknown accounts and bad passwords both report ErrInvalidCredentials so
// responses do not leak which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, email)
		if err == nil && !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CurrentUser resolves the principal behind a validated token and attaches
// the profile matching its role, which is what GET /auth/me returns.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == domain.RoleApplicant && s.applicants != nil {
		profile, err := s.applicants.FindByUserID(ctx, user.ID)
		if err == nil {
			user.ApplicantProfile = profile
		} else if err != domain.ErrProfileNotFound {
			return nil, err
		}
	}

	return user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle != nil {
		_ = s.throttle.RecordFailure(ctx, email)
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
