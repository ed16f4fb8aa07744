package webapp

import "github.com/expertsdental/clinic-system/internal/core/domain"

// LoginPath is the public entry point for anonymous visitors.
const LoginPath = "/login"

// AuthState is the guard's view of the session: whether the session check
// has completed, and the session user if one exists.
type AuthState struct {
	Initialized bool
	User        *domain.User
}

// DecisionKind enumerates guard outcomes.
type DecisionKind int

const (
	// DecisionLoading: session check still in flight, render nothing yet.
	DecisionLoading DecisionKind = iota
	// DecisionRedirect: navigation must move to Target instead.
	DecisionRedirect
	// DecisionRender: the protected content may mount.
	DecisionRender
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// Resolve decides whether a view guarded by the required roles may render.
// It is a pure function of the auth state and the role set:
//
//   - uninitialized state renders a loading indicator, never the login page
//   - no user redirects to the login entry point
//   - a user with the wrong role redirects to their own role home; denial is
//     resolved by rerouting, never by a forbidden page
//   - an empty role set is public
func Resolve(state AuthState, required []domain.Role) Decision {
	if !state.Initialized {
		return Decision{Kind: DecisionLoading}
	}
	if len(required) == 0 {
		return Decision{Kind: DecisionRender}
	}
	if state.User == nil {
		return Decision{Kind: DecisionRedirect, Target: LoginPath}
	}
	for _, role := range required {
		if state.User.Role == role {
			return Decision{Kind: DecisionRender}
		}
	}
	return Decision{Kind: DecisionRedirect, Target: RoleHome(state.User.Role)}
}

// RoleHome is the default dashboard path for a role. Unknown roles resolve
// to the login entry point.
func RoleHome(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "/admin"
	case domain.RoleDoctor:
		return "/doctor"
	case domain.RoleReceptionist:
		return "/receptionist"
	default:
		return LoginPath
	}
}
