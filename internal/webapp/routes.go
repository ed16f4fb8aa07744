package webapp

import (
	"strings"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// Route is one entry in the declarative route table: a path pattern with
// optional :param segments, the roles allowed to mount it (empty = public),
// and the i18n key for the page title.
type Route struct {
	Pattern  string
	Roles    []domain.Role
	TitleKey string
}

// Routes is the full shell route table. Registered once at startup and
// immutable afterwards.
func Routes() []Route {
	anyStaff := []domain.Role{domain.RoleAdmin, domain.RoleDoctor, domain.RoleReceptionist}

	return []Route{
		{Pattern: "/login", TitleKey: "login.title"},

		{Pattern: "/admin", Roles: []domain.Role{domain.RoleAdmin}, TitleKey: "nav.dashboard"},
		{Pattern: "/admin/patients", Roles: []domain.Role{domain.RoleAdmin}, TitleKey: "patient.title"},
		{Pattern: "/admin/appointments", Roles: []domain.Role{domain.RoleAdmin}, TitleKey: "appointment.title"},
		{Pattern: "/admin/procedures", Roles: []domain.Role{domain.RoleAdmin}, TitleKey: "procedure.title"},
		{Pattern: "/admin/users", Roles: []domain.Role{domain.RoleAdmin}, TitleKey: "user.title"},
		{Pattern: "/admin/payments", Roles: []domain.Role{domain.RoleAdmin}, TitleKey: "payment.title"},

		{Pattern: "/doctor", Roles: []domain.Role{domain.RoleDoctor}, TitleKey: "nav.dashboard"},
		{Pattern: "/doctor/calendar", Roles: []domain.Role{domain.RoleDoctor}, TitleKey: "nav.calendar"},

		{Pattern: "/receptionist", Roles: []domain.Role{domain.RoleReceptionist}, TitleKey: "nav.dashboard"},
		{Pattern: "/receptionist/patients", Roles: []domain.Role{domain.RoleReceptionist}, TitleKey: "patient.title"},
		{Pattern: "/receptionist/calendar", Roles: []domain.Role{domain.RoleReceptionist}, TitleKey: "nav.calendar"},
		{Pattern: "/receptionist/payments", Roles: []domain.Role{domain.RoleReceptionist}, TitleKey: "payment.title"},

		{Pattern: "/patients/:id", Roles: anyStaff, TitleKey: "patient.details"},
	}
}

// Match walks the table and returns the first route whose pattern matches
// the path, with any :param segments bound.
func Match(routes []Route, path string) (*Route, map[string]string, bool) {
	segments := splitPath(path)
	for i := range routes {
		if params, ok := matchPattern(routes[i].Pattern, segments); ok {
			return &routes[i], params, true
		}
	}
	return nil, nil, false
}

func matchPattern(pattern string, segments []string) (map[string]string, bool) {
	want := splitPath(pattern)
	if len(want) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, w := range want {
		if strings.HasPrefix(w, ":") {
			if params == nil {
				params = make(map[string]string)
			}
			params[w[1:]] = segments[i]
			continue
		}
		if w != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
