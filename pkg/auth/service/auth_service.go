package service

import "errors"

var ErrBadCredentials = errors.New("credenciales inválidas")

// Identity is the current-user view the rest of the service consumes: version
// headers record Email as created_by, catalog filtering uses Rol.
type Identity struct {
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

type AuthService interface {
	// Login checks the profile secret and returns a signed session token.
	Login(email, secret string) (string, *Identity, error)

	// Parse validates a session token and returns the identity it carries.
	Parse(token string) (*Identity, error)
}
