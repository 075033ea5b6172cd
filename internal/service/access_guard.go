package service

// Decision is the outcome of evaluating a route against a session.
type Decision int

const (
	// DecisionAllow renders the requested view.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends the caller to the login route.
	DecisionRedirectLogin
	// DecisionRedirectHome sends the caller to the user landing route.
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// EvaluateRoute decides whether a principal may enter a route that requires
// the given role. It is pure: no network access, no side effects.
//
// A missing or email-less principal is unauthenticated and goes to login,
// whatever the required role. A non-admin requesting an admin route goes to
// the user landing route. Everything else is allowed.
func EvaluateRoute(required Role, p *Principal) Decision {
	if p == nil || p.Email == "" {
		return DecisionRedirectLogin
	}
	if required == RoleAdmin && p.Role != RoleAdmin {
		return DecisionRedirectHome
	}
	return DecisionAllow
}

// EvaluateLoginRoute guards the login route itself: an already-authenticated
// principal is sent to the user landing route instead of re-authenticating.
func EvaluateLoginRoute(p *Principal) Decision {
	if p != nil && p.Email != "" {
		return DecisionRedirectHome
	}
	return DecisionAllow
}
