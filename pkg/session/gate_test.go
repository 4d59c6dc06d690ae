package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecide_Table(t *testing.T) {
	talent := &User{ID: "1", Role: RoleTalent}
	admin := &User{ID: "2", Role: RoleAdmin}

	cases := []struct {
		name  string
		state SessionState
		route RouteSpec
		want  Decision
	}{
		{
			name:  "loading renders placeholder regardless of route",
			state: SessionState{Loading: true},
			route: RouteSpec{Path: "/admin", RequiresAuth: true, RequiredRole: RoleAdmin},
			want:  Decision{Kind: Render},
		},
		{
			name:  "anonymous on protected route redirects to login",
			state: SessionState{},
			route: RouteSpec{Path: "/dashboard", RequiresAuth: true},
			want:  Decision{Kind: Redirect, Target: LoginRoute},
		},
		{
			name:  "authenticated on protected route with no role requirement renders",
			state: SessionState{User: talent},
			route: RouteSpec{Path: "/projects", RequiresAuth: true},
			want:  Decision{Kind: Render},
		},
		{
			name:  "role match renders",
			state: SessionState{User: admin},
			route: RouteSpec{Path: "/admin", RequiresAuth: true, RequiredRole: RoleAdmin},
			want:  Decision{Kind: Render},
		},
		{
			name:  "role mismatch redirects to default landing",
			state: SessionState{User: talent},
			route: RouteSpec{Path: "/admin", RequiresAuth: true, RequiredRole: RoleAdmin},
			want:  Decision{Kind: Redirect, Target: DashboardRoute},
		},
		{
			name:  "public route renders for anonymous",
			state: SessionState{},
			route: RouteSpec{Path: "/"},
			want:  Decision{Kind: Render},
		},
		{
			name:  "public route renders for authenticated",
			state: SessionState{User: talent},
			route: RouteSpec{Path: "/"},
			want:  Decision{Kind: Render},
		},
		{
			name:  "authenticated user is bounced off the login form",
			state: SessionState{User: talent},
			route: RouteSpec{Path: LoginRoute},
			want:  Decision{Kind: Redirect, Target: DashboardRoute},
		},
		{
			name:  "authenticated user is bounced off the signup form",
			state: SessionState{User: talent},
			route: RouteSpec{Path: SignupRoute},
			want:  Decision{Kind: Redirect, Target: DashboardRoute},
		},
		{
			name:  "anonymous user may open the login form",
			state: SessionState{},
			route: RouteSpec{Path: LoginRoute},
			want:  Decision{Kind: Render},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Decide(tc.state, tc.route))
		})
	}
}

func TestDashboardFor_TotalOverRoles(t *testing.T) {
	require.Equal(t, ClientDashboard, DashboardFor(RoleClient))
	require.Equal(t, TalentDashboard, DashboardFor(RoleTalent))
	require.Equal(t, ApplicantDashboard, DashboardFor(RoleApplicant))
	require.Equal(t, AdminConsole, DashboardFor(RoleAdmin))

	// Unknown role values render the generic landing instead of crashing.
	require.Equal(t, GenericDashboard, DashboardFor(Role("WIZARD")))
	require.Equal(t, GenericDashboard, DashboardFor(Role("")))
}

func TestDecide_ExampleScenario(t *testing.T) {
	// Boot with no stored token, log in as a client, then check routing.
	st := SessionState{Loading: true}
	require.Equal(t, Render, Decide(st, RouteSpec{Path: "/dashboard", RequiresAuth: true}).Kind)

	st = SessionState{} // bootstrap resolved, no token
	require.Equal(t,
		Decision{Kind: Redirect, Target: LoginRoute},
		Decide(st, RouteSpec{Path: "/dashboard", RequiresAuth: true}))

	st = SessionState{User: &User{ID: "1", Email: "client1@example.com", Role: RoleClient}}
	require.Equal(t, Render, Decide(st, RouteSpec{Path: "/dashboard", RequiresAuth: true}).Kind)
	require.Equal(t, ClientDashboard, DashboardFor(st.User.Role))
	require.Equal(t,
		Decision{Kind: Redirect, Target: DashboardRoute},
		Decide(st, RouteSpec{Path: "/admin", RequiresAuth: true, RequiredRole: RoleAdmin}))
}
