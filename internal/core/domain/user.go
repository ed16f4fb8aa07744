package domain

import "time"

// Role is the access level of a clinic staff account.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// ValidRole reports whether r is one of the three clinic roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

// User models a staff account. The session cookie is the source of truth for
// who is logged in; at most one user is materialized per session.
type User struct {
	ID                   int       `json:"id" bson:"_id"`
	Username             string    `json:"username" bson:"username"`
	PasswordHash         string    `json:"-" bson:"password_hash"`
	FullName             string    `json:"full_name" bson:"full_name"`
	Role                 Role      `json:"role" bson:"role"`
	IsFirstLogin         bool      `json:"is_first_login" bson:"is_first_login"`
	SessionDurationHours int       `json:"session_duration_hours" bson:"session_duration_hours"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
}

// SessionTTL is how long a freshly minted session token for this user lives.
func (u *User) SessionTTL() time.Duration {
	hours := u.SessionDurationHours
	if hours <= 0 {
		hours = 8
	}
	return time.Duration(hours) * time.Hour
}
