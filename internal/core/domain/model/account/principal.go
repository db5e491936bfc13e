package account

import "parcellocker/internal/core/domain/model/kernel"

// Principal is the authenticated actor's projection resolved from a request
// credential: identity, role and the country rents are allocated in. It is
// never persisted by the core.
type Principal struct {
	ID      kernel.UUID
	Email   string
	Role    Role
	Country kernel.Country
}

// IsOperations reports whether the principal holds the elevated role.
func (p Principal) IsOperations() bool {
	return p.Role == OperationsUser
}
