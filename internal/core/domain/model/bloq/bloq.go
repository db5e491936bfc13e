package bloq

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// Domain errors for bloq operations.
var (
	// ErrTitleIsRequired is returned when creating a bloq without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrAddressIsRequired is returned when creating a bloq without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrBloqIsNotConstructed is returned when using an improperly initialized Bloq.
	ErrBloqIsNotConstructed = errors.New("Bloq must be created via NewBloq constructor")
)

// Bloq represents a physical locker site. It is an aggregate root owning the
// site identity: title, street address and the country it serves.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Title and address must be non-empty
//   - Country belongs to the supported closed set and never changes after
//     creation; only title and address are editable
type Bloq struct {
	id      kernel.UUID
	title   string
	address string
	country kernel.Country

	guard guard.ConstructorGuard
}

// NewBloq creates a validated Bloq. This is the only way to obtain a valid
// instance; all parameters are checked and errors are aggregated.
func NewBloq(id kernel.UUID, title, address string, country kernel.Country) (*Bloq, error) {
	b := &Bloq{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setTitle(title),
		b.setAddress(address),
		b.setCountry(country),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBloq reconstructs a Bloq from persistent storage. The restored
// aggregate behaves identically to one created through NewBloq.
func RestoreBloq(id kernel.UUID, title, address string, country kernel.Country) (*Bloq, error) {
	return NewBloq(id, title, address, country)
}

// Validate ensures the Bloq was created through NewBloq.
func (b *Bloq) Validate() error {
	if b == nil {
		return ErrBloqIsNotConstructed
	}
	return b.guard.Validate(ErrBloqIsNotConstructed)
}

// IsEqual compares two bloqs by identifier.
func (b *Bloq) IsEqual(other *Bloq) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bloq's unique identifier.
func (b *Bloq) ID() kernel.UUID {
	return b.id
}

// Title returns the human-readable site name.
func (b *Bloq) Title() string {
	return b.title
}

// Address returns the street address of the site.
func (b *Bloq) Address() string {
	return b.address
}

// Country returns the country this site serves. Immutable after creation.
func (b *Bloq) Country() kernel.Country {
	return b.country
}

// Rename changes the site title. Empty titles are rejected.
func (b *Bloq) Rename(title string) error {
	return b.setTitle(title)
}

// Relocate changes the street address. Empty addresses are rejected.
func (b *Bloq) Relocate(address string) error {
	return b.setAddress(address)
}

func (b *Bloq) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bloq) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	b.title = title
	return nil
}

func (b *Bloq) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	b.address = address
	return nil
}

func (b *Bloq) setCountry(country kernel.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}
	b.country = country
	return nil
}
