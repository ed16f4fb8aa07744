package webapp

import (
	"testing"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

func TestResolve_UninitializedIsLoading(t *testing.T) {
	// A pending session check must never flash the login page.
	d := Resolve(AuthState{}, []domain.Role{domain.RoleAdmin})
	if d.Kind != DecisionLoading {
		t.Fatalf("expected loading, got %+v", d)
	}
}

func TestResolve_PublicRouteRenders(t *testing.T) {
	d := Resolve(AuthState{Initialized: true}, nil)
	if d.Kind != DecisionRender {
		t.Fatalf("expected render, got %+v", d)
	}
}

func TestResolve_AnonymousRedirectsToLogin(t *testing.T) {
	d := Resolve(AuthState{Initialized: true}, []domain.Role{domain.RoleDoctor})
	if d.Kind != DecisionRedirect || d.Target != LoginPath {
		t.Fatalf("expected redirect to %s, got %+v", LoginPath, d)
	}
}

func TestResolve_MatchingRoleRenders(t *testing.T) {
	state := AuthState{Initialized: true, User: &domain.User{Role: domain.RoleDoctor}}
	d := Resolve(state, []domain.Role{domain.RoleAdmin, domain.RoleDoctor})
	if d.Kind != DecisionRender {
		t.Fatalf("expected render, got %+v", d)
	}
}

func TestResolve_WrongRoleRedirectsHome(t *testing.T) {
	// Denial reroutes to the caller's own dashboard, never a forbidden page.
	state := AuthState{Initialized: true, User: &domain.User{Role: domain.RoleReceptionist}}
	d := Resolve(state, []domain.Role{domain.RoleAdmin})
	if d.Kind != DecisionRedirect || d.Target != "/receptionist" {
		t.Fatalf("expected redirect to /receptionist, got %+v", d)
	}
}

func TestRoleHome(t *testing.T) {
	cases := map[domain.Role]string{
		domain.RoleAdmin:        "/admin",
		domain.RoleDoctor:       "/doctor",
		domain.RoleReceptionist: "/receptionist",
		domain.Role("ghost"):    LoginPath,
	}
	for role, want := range cases {
		if got := RoleHome(role); got != want {
			t.Fatalf("RoleHome(%s) = %s, want %s", role, got, want)
		}
	}
}
