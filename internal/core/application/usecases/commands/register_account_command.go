package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterAccountCommand represents a signup request. The raw password never
// reaches the aggregate; the handler hashes it before construction.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	name      string
	email     string
	password  string
	role      account.Role
	country   kernel.Country

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a signup command. Name, email, role and
// country validation is delegated to the Account aggregate; the command
// guards the identifier and the presence of a password.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name, email, password string,
	role account.Role,
	country kernel.Country,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := accountID.Validate(); err != nil {
		return RegisterAccountCommand{}, err
	}

	if password == "" {
		return RegisterAccountCommand{}, ErrPasswordIsRequired
	}

	cmd.accountID = accountID
	cmd.name = name
	cmd.email = email
	cmd.password = password
	cmd.role = role
	cmd.country = country
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the raw password to hash.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// Country returns the country the account is bound to.
func (c RegisterAccountCommand) Country() kernel.Country {
	return c.country
}
