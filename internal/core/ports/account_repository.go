package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Emails are unique across accounts; lookups by email back both registration
// and login.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and its email not already taken.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account aggregate by its login email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
