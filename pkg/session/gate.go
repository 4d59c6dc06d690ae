package session

// Well-known navigation targets.
const (
	LoginRoute     = "/login"
	SignupRoute    = "/signup"
	DashboardRoute = "/dashboard"
)

// RouteSpec declares what a navigation target requires.
type RouteSpec struct {
	Path         string
	RequiresAuth bool
	// RequiredRole narrows an authenticated route to one role. Empty
	// means any authenticated user may enter.
	RequiredRole Role
}

// DecisionKind tags the gate's verdict.
type DecisionKind int

const (
	Render DecisionKind = iota
	Redirect
)

// Decision is the gate's verdict for one navigation attempt. Target is
// set only for redirects.
type Decision struct {
	Kind   DecisionKind
	Target string
}

func render() Decision              { return Decision{Kind: Render} }
func redirect(to string) Decision   { return Decision{Kind: Redirect, Target: to} }
func (d Decision) Redirected() bool { return d.Kind == Redirect }

// Decide is the pure route-authorization function. While the session is
// still loading every route renders its placeholder; afterwards
// unauthenticated users are sent to the login page, role mismatches to
// the default authenticated landing, and already-authenticated users away
// from the login/signup forms.
func Decide(st SessionState, route RouteSpec) Decision {
	if st.Loading {
		return render()
	}

	if !route.RequiresAuth {
		if st.User != nil && (route.Path == LoginRoute || route.Path == SignupRoute) {
			return redirect(DashboardRoute)
		}
		return render()
	}

	if st.User == nil {
		return redirect(LoginRoute)
	}

	if route.RequiredRole != "" && st.User.Role != route.RequiredRole {
		return redirect(DashboardRoute)
	}

	return render()
}

// Page identifies which landing view the dashboard route resolves to.
type Page int

const (
	// GenericDashboard is the fallback for role values this build does
	// not recognize; rendering it beats crashing on bad data.
	GenericDashboard Page = iota
	ClientDashboard
	TalentDashboard
	ApplicantDashboard
	AdminConsole
)

// DashboardFor maps a role to its landing page. Total over the role
// enumeration, with GenericDashboard as the explicit default.
func DashboardFor(role Role) Page {
	switch role {
	case RoleClient:
		return ClientDashboard
	case RoleTalent:
		return TalentDashboard
	case RoleApplicant:
		return ApplicantDashboard
	case RoleAdmin:
		return AdminConsole
	default:
		return GenericDashboard
	}
}
