package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubAPI scripts the remote auth service.
type stubAPI struct {
	loginFn   func(email, password string) (Credentials, error)
	signupFn  func(email, password string, role Role) (Credentials, error)
	currentFn func(token string) (User, error)

	currentCalls int
}

func (s *stubAPI) Login(_ context.Context, email, password string) (Credentials, error) {
	return s.loginFn(email, password)
}

func (s *stubAPI) Signup(_ context.Context, email, password string, role Role) (Credentials, error) {
	return s.signupFn(email, password, role)
}

func (s *stubAPI) CurrentUser(_ context.Context, token string) (User, error) {
	s.currentCalls++
	return s.currentFn(token)
}

// recordingNotifier captures emitted notifications.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func TestBootstrap_NoToken(t *testing.T) {
	api := &stubAPI{currentFn: func(string) (User, error) {
		t.Fatal("no network call expected without a stored token")
		return User{}, nil
	}}
	ctl := NewController(api, NewMemTokenStore(), nil)

	require.Equal(t, Bootstrapping, ctl.State().Phase())
	ctl.Bootstrap(context.Background())

	st := ctl.State()
	require.Equal(t, Anonymous, st.Phase())
	require.False(t, st.Loading)
	require.Nil(t, st.User)
	require.Zero(t, api.currentCalls)
}

func TestBootstrap_ValidToken(t *testing.T) {
	alice := User{ID: "1", Email: "alice@example.com", Role: RoleTalent}
	api := &stubAPI{currentFn: func(token string) (User, error) {
		require.Equal(t, "tok-valid", token)
		return alice, nil
	}}
	store := NewMemTokenStore()
	require.NoError(t, store.Set("tok-valid"))

	ctl := NewController(api, store, nil)
	ctl.Bootstrap(context.Background())

	st := ctl.State()
	require.Equal(t, Authenticated, st.Phase())
	require.Equal(t, &alice, st.User)
	require.Equal(t, "tok-valid", ctl.Token())
}

func TestBootstrap_InvalidTokenClearsStore(t *testing.T) {
	api := &stubAPI{currentFn: func(string) (User, error) {
		return User{}, &APIError{Status: 401, Message: "session is no longer valid", kind: ErrUnauthenticated}
	}}
	store := NewMemTokenStore()
	require.NoError(t, store.Set("tok-stale"))

	ctl := NewController(api, store, nil)
	ctl.Bootstrap(context.Background())

	st := ctl.State()
	require.Equal(t, Anonymous, st.Phase())
	stored, err := store.Get()
	require.NoError(t, err)
	require.Empty(t, stored, "stale token must be dropped from the store")
	require.Empty(t, ctl.Token())
}

func TestBootstrap_RunsOnce(t *testing.T) {
	api := &stubAPI{currentFn: func(string) (User, error) {
		return User{ID: "1"}, nil
	}}
	store := NewMemTokenStore()
	require.NoError(t, store.Set("tok"))

	ctl := NewController(api, store, nil)
	ctl.Bootstrap(context.Background())
	ctl.Bootstrap(context.Background())

	require.Equal(t, 1, api.currentCalls)
}

func TestLogin_RoundTrip(t *testing.T) {
	u := User{ID: "1", Email: "client1@example.com", Role: RoleClient}
	api := &stubAPI{loginFn: func(email, password string) (Credentials, error) {
		require.Equal(t, "client1@example.com", email)
		require.Equal(t, "client123", password)
		return Credentials{Token: "tok1", User: u}, nil
	}}
	store := NewMemTokenStore()
	notifier := &recordingNotifier{}

	ctl := NewController(api, store, notifier)
	ctl.Bootstrap(context.Background())

	require.NoError(t, ctl.Login(context.Background(), "client1@example.com", "client123"))

	stored, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "tok1", stored)
	require.Equal(t, &u, ctl.CurrentUser())
	require.Equal(t, Authenticated, ctl.State().Phase())
	require.Equal(t, []string{"Welcome back!"}, notifier.successes)
}

func TestLogin_FailurePreservesPriorSession(t *testing.T) {
	userA := User{ID: "a", Email: "a@example.com", Role: RoleClient}
	failing := false
	api := &stubAPI{loginFn: func(email, _ string) (Credentials, error) {
		if failing {
			return Credentials{}, &APIError{Status: 401, Message: "Invalid email or password", kind: ErrInvalidCredentials}
		}
		return Credentials{Token: "tok-a", User: userA}, nil
	}}
	store := NewMemTokenStore()
	notifier := &recordingNotifier{}

	ctl := NewController(api, store, notifier)
	ctl.Bootstrap(context.Background())
	require.NoError(t, ctl.Login(context.Background(), "a@example.com", "pw"))

	failing = true
	err := ctl.Login(context.Background(), "b@example.com", "wrong")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// No partial overwrite: still authenticated as user A with A's token.
	require.Equal(t, &userA, ctl.CurrentUser())
	require.Equal(t, "tok-a", ctl.Token())
	stored, _ := store.Get()
	require.Equal(t, "tok-a", stored)
	require.Equal(t, []string{"Invalid email or password"}, notifier.errors)
}

func TestLogin_FallbackMessage(t *testing.T) {
	api := &stubAPI{loginFn: func(string, string) (Credentials, error) {
		return Credentials{}, errors.New("connection refused")
	}}
	notifier := &recordingNotifier{}

	ctl := NewController(api, NewMemTokenStore(), notifier)
	require.Error(t, ctl.Login(context.Background(), "x@example.com", "pw"))
	require.Equal(t, []string{"Login failed"}, notifier.errors)
}

func TestSignup_DefaultsAndNotifies(t *testing.T) {
	api := &stubAPI{signupFn: func(email, _ string, role Role) (Credentials, error) {
		return Credentials{Token: "tok-s", User: User{ID: "2", Email: email, Role: role}}, nil
	}}
	store := NewMemTokenStore()
	notifier := &recordingNotifier{}

	ctl := NewController(api, store, notifier)
	require.NoError(t, ctl.Signup(context.Background(), "new@example.com", "pw", RoleApplicant))

	require.Equal(t, RoleApplicant, ctl.CurrentUser().Role)
	stored, _ := store.Get()
	require.Equal(t, "tok-s", stored)
	require.Equal(t, []string{"Account created successfully!"}, notifier.successes)
}

func TestSignup_FailureNotifiesAndRethrows(t *testing.T) {
	api := &stubAPI{signupFn: func(string, string, Role) (Credentials, error) {
		return Credentials{}, &APIError{Status: 409, Message: "an account with this email already exists", kind: ErrSignupRejected}
	}}
	notifier := &recordingNotifier{}

	ctl := NewController(api, NewMemTokenStore(), notifier)
	err := ctl.Signup(context.Background(), "dupe@example.com", "pw", RoleClient)
	require.ErrorIs(t, err, ErrSignupRejected)
	require.Equal(t, []string{"an account with this email already exists"}, notifier.errors)
	require.Equal(t, Anonymous, ctl.State().Phase())
}

func TestLogout_Idempotent(t *testing.T) {
	api := &stubAPI{loginFn: func(string, string) (Credentials, error) {
		return Credentials{Token: "tok", User: User{ID: "1"}}, nil
	}}
	store := NewMemTokenStore()
	ctl := NewController(api, store, nil)
	require.NoError(t, ctl.Login(context.Background(), "a@example.com", "pw"))

	ctl.Logout()
	require.Equal(t, Anonymous, ctl.State().Phase())

	// A second logout stays ANONYMOUS and never panics or errors.
	ctl.Logout()
	st := ctl.State()
	require.Equal(t, Anonymous, st.Phase())
	require.Nil(t, st.User)
	stored, err := store.Get()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestRefreshUser_ResyncsWithoutTouchingLoading(t *testing.T) {
	updated := User{ID: "1", Email: "a@example.com", Role: RoleApplicant,
		ApplicantProfile: &ApplicantProfile{ID: "ap", Status: "SUBMITTED"}}
	api := &stubAPI{
		loginFn: func(string, string) (Credentials, error) {
			return Credentials{Token: "tok", User: User{ID: "1", Email: "a@example.com", Role: RoleApplicant}}, nil
		},
		currentFn: func(token string) (User, error) {
			require.Equal(t, "tok", token)
			return updated, nil
		},
	}
	ctl := NewController(api, NewMemTokenStore(), nil)
	ctl.Bootstrap(context.Background())
	require.NoError(t, ctl.Login(context.Background(), "a@example.com", "pw"))

	ctl.RefreshUser(context.Background())

	st := ctl.State()
	require.False(t, st.Loading)
	require.Equal(t, &updated, st.User)
}

func TestRefreshUser_RejectedTokenForcesAnonymous(t *testing.T) {
	api := &stubAPI{
		loginFn: func(string, string) (Credentials, error) {
			return Credentials{Token: "tok", User: User{ID: "1"}}, nil
		},
		currentFn: func(string) (User, error) {
			return User{}, &APIError{Status: 401, Message: "invalid token", kind: ErrUnauthenticated}
		},
	}
	store := NewMemTokenStore()
	ctl := NewController(api, store, nil)
	require.NoError(t, ctl.Login(context.Background(), "a@example.com", "pw"))

	// Absorbed, never thrown: the session just falls back to anonymous.
	ctl.RefreshUser(context.Background())

	require.Equal(t, Anonymous, ctl.State().Phase())
	stored, _ := store.Get()
	require.Empty(t, stored)
}
