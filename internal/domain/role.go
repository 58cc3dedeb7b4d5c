package domain

// Role determines what a session may do. Guests have no cookie at all;
// user and admin are carried verbatim in the session cookie value.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a cookie value onto a known role. Anything unrecognized
// degrades to guest rather than erroring.
func ParseRole(v string) Role {
	switch Role(v) {
	case RoleUser:
		return RoleUser
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleGuest
	}
}
