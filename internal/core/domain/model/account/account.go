package account

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// Domain errors for account operations.
var (
	// ErrNameIsRequired is returned when registering an account without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when registering an account without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when the password hash is missing.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account represents a registered user. The aggregate stores only the bcrypt
// hash of the password; hashing itself happens at the application boundary.
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	country      kernel.Country

	guard guard.ConstructorGuard
}

// NewAccount creates a validated Account.
func NewAccount(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	country kernel.Country,
) (*Account, error) {
	a := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
		a.setCountry(country),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistent storage.
func RestoreAccount(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	country kernel.Country,
) (*Account, error) {
	return NewAccount(id, name, email, passwordHash, role, country)
}

// Validate ensures the Account was created through NewAccount.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the unique login email.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account role.
func (a *Account) Role() Role {
	return a.role
}

// Country returns the country the account is bound to. Rents created by this
// account are served by bloqs in this country.
func (a *Account) Country() kernel.Country {
	return a.country
}

// AsPrincipal projects the account into the per-request Principal shape.
func (a *Account) AsPrincipal() Principal {
	return Principal{
		ID:      a.id,
		Email:   a.email,
		Role:    a.role,
		Country: a.country,
	}
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setCountry(country kernel.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}
	a.country = country
	return nil
}
