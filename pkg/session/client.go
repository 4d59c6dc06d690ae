package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Failure taxonomy of the auth API. APIError wraps one of these sentinels
// so callers can branch with errors.Is while still showing the server's
// human-readable message.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSignupRejected     = errors.New("signup rejected")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrTransport          = errors.New("transport failure")
)

const (
	loginFallbackMessage  = "Login failed"
	signupFallbackMessage = "Signup failed"
)

// APIError is a 4xx/5xx response from the auth API. Message is the
// server-provided error text when present, otherwise a fixed fallback.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Unwrap() error { return e.kind }

// Credentials is the successful result of login or signup.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// API is the surface of the remote auth service the session controller
// depends on. The token is an explicit parameter everywhere it is needed;
// the client holds no hidden mutable transport state.
type API interface {
	Login(ctx context.Context, email, password string) (Credentials, error)
	Signup(ctx context.Context, email, password string, role Role) (Credentials, error)
	CurrentUser(ctx context.Context, token string) (User, error)
}

// HTTPClient implements API over the REST backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient creates a client for the backend at baseURL. A nil hc
// falls back to a client with a 30s timeout.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := c.post(ctx, "/auth/login", authPayload{Email: email, Password: password}, &creds, ErrInvalidCredentials, loginFallbackMessage)
	return creds, err
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string, role Role) (Credentials, error) {
	if role == "" {
		role = RoleClient
	}
	var creds Credentials
	err := c.post(ctx, "/auth/signup", authPayload{Email: email, Password: password, Role: role}, &creds, ErrSignupRejected, signupFallbackMessage)
	return creds, err
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return User{}, &APIError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp, "session is no longer valid"),
			kind:    ErrUnauthenticated,
		}
	}

	var body struct {
		User User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}
	return body.User, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload authPayload, out *Credentials, kind error, fallback string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp, fallback),
			kind:    kind,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode credentials: %w", err)
	}
	return nil
}

// decodeErrorMessage extracts the server's {"error": "..."} text, falling
// back to the fixed message when the body is absent or unparseable.
func decodeErrorMessage(resp *http.Response, fallback string) string {
	var payload errorPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}
