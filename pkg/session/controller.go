package session

import (
	"context"
	"errors"
	"sync"
)

// Phase is the lifecycle position of the session.
type Phase int

const (
	// Bootstrapping is the interval between construction and the first
	// reconcile attempt resolving. Role-gated content must not render yet.
	Bootstrapping Phase = iota
	Anonymous
	Authenticated
)

func (p Phase) String() string {
	switch p {
	case Bootstrapping:
		return "BOOTSTRAPPING"
	case Anonymous:
		return "ANONYMOUS"
	case Authenticated:
		return "AUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}

// SessionState is the snapshot the gate and UI consume.
type SessionState struct {
	Loading bool
	User    *User
}

// Phase derives the lifecycle position from the two state axes.
func (s SessionState) Phase() Phase {
	switch {
	case s.Loading:
		return Bootstrapping
	case s.User == nil:
		return Anonymous
	default:
		return Authenticated
	}
}

// Notifier receives the user-facing notifications the controller emits on
// auth transitions (the toast layer in the original UI).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Controller is the sole owner of the current user and loading flag. It
// orchestrates the token store and the auth API: construct it once per
// process, call Bootstrap to reconcile any persisted token, then drive it
// from the UI. All methods are safe for concurrent use, though callers
// are expected to keep at most one auth action in flight; concurrent
// outcomes apply in completion order, last write wins.
type Controller struct {
	api      API
	store    TokenStore
	notifier Notifier

	mu           sync.Mutex
	user         *User
	token        string
	loading      bool
	bootstrapped bool
}

// NewController creates a controller in the BOOTSTRAPPING state. A nil
// notifier defaults to NopNotifier.
func NewController(api API, store TokenStore, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Controller{
		api:      api,
		store:    store,
		notifier: notifier,
		loading:  true,
	}
}

// State returns the current snapshot.
func (c *Controller) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SessionState{Loading: c.loading, User: c.user}
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func (c *Controller) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Token returns the bearer token attached to the session, empty when
// anonymous. Callers pass it explicitly to other API clients.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Bootstrap reconciles the persisted token with server-confirmed identity.
// With no stored token it settles to ANONYMOUS without a network call;
// with one, the server decides. It runs at most once per controller:
// subsequent calls are no-ops, preserving the invariant that loading is
// true for exactly one contiguous interval from construction.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.mu.Lock()
	if c.bootstrapped {
		c.mu.Unlock()
		return
	}
	c.bootstrapped = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	token, err := c.store.Get()
	if err != nil || token == "" {
		return
	}
	c.reconcile(ctx, token)
}

// RefreshUser re-runs the fetch-and-reconcile step against the currently
// attached token, e.g. after a profile edit. Failures are absorbed: a
// rejected token forces the session back to ANONYMOUS, and the loading
// flag is never touched after bootstrap.
func (c *Controller) RefreshUser(ctx context.Context) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		var err error
		token, err = c.store.Get()
		if err != nil || token == "" {
			return
		}
	}
	c.reconcile(ctx, token)
}

// reconcile asks the server who the token belongs to. On success the user
// is (re)attached; on any failure the stored token is dropped so the UI
// falls back to the anonymous flow instead of looping on a dead token.
func (c *Controller) reconcile(ctx context.Context, token string) {
	user, err := c.api.CurrentUser(ctx, token)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		_ = c.store.Clear()
		c.token = ""
		c.user = nil
		return
	}
	c.token = token
	c.user = &user
}

// Login authenticates with the server. On success the token is persisted
// and the session moves to AUTHENTICATED from any state. On failure the
// prior state is preserved, the failure is surfaced as a notification
// (server message or fallback), and the error is re-raised so the calling
// form can stay open.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	creds, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.notifier.Error(failureMessage(err, loginFallbackMessage))
		return err
	}

	c.adopt(creds)
	c.notifier.Success("Welcome back!")
	return nil
}

// Signup is symmetric to Login. An empty role defaults to CLIENT.
func (c *Controller) Signup(ctx context.Context, email, password string, role Role) error {
	creds, err := c.api.Signup(ctx, email, password, role)
	if err != nil {
		c.notifier.Error(failureMessage(err, signupFallbackMessage))
		return err
	}

	c.adopt(creds)
	c.notifier.Success("Account created successfully!")
	return nil
}

// Logout clears the persisted token and returns to ANONYMOUS. It never
// fails and is idempotent.
func (c *Controller) Logout() {
	c.mu.Lock()
	_ = c.store.Clear()
	c.token = ""
	c.user = nil
	c.mu.Unlock()

	c.notifier.Success("Logged out successfully")
}

func (c *Controller) adopt(creds Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.store.Set(creds.Token)
	c.token = creds.Token
	user := creds.User
	c.user = &user
}

// failureMessage prefers the server-provided text carried by an APIError;
// transport and decode failures get the fixed fallback.
func failureMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
