package auth

import (
	"triply/internal/domain"
)

// Service validates the toy role-cookie session model. There is no
// password and no server-side session table; the cookie value is the
// whole identity.
type Service struct{}

func New() *Service {
	return &Service{}
}

// Login checks the requested role. Only user and admin may be issued a
// session cookie.
func (s *Service) Login(role string) (domain.Role, error) {
	switch domain.Role(role) {
	case domain.RoleUser, domain.RoleAdmin:
		return domain.Role(role), nil
	default:
		return "", domain.Invalid("role must be user or admin")
	}
}
