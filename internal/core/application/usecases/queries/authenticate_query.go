package queries

import (
	"errors"

	"parcellocker/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
	// ErrCredentialsAreRequired is returned when email or password is missing.
	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// AuthenticateQuery verifies a login attempt. It is a query rather than a
// command: authentication reads state, it never changes it.
type AuthenticateQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a login verification query.
func NewAuthenticateQuery(email, password string) (AuthenticateQuery, error) {
	if email == "" || password == "" {
		return AuthenticateQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateQuery) Email() string {
	return q.email
}

// Password returns the raw password to verify.
func (q AuthenticateQuery) Password() string {
	return q.password
}
