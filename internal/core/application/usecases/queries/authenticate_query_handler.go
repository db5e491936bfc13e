package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike, so login responses do not reveal which emails exist.
var ErrInvalidCredentials = errs.NewUnauthorizedError("Invalid credentials")

// AuthenticateQueryHandler verifies login credentials against the stored
// bcrypt hash and projects the matching account into a Principal.
type AuthenticateQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateQueryHandler creates a handler for login verification.
func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle executes the verification. On success it returns the Principal the
// transport layer encodes into a token.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (account.Principal, error) {
	if err := query.Validate(); err != nil {
		return account.Principal{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			password_hash,
			role,
			country
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	var id uuid.UUID
	var email, passwordHash string
	var role, country int

	if err := row.Scan(&id, &email, &passwordHash, &role, &country); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return account.Principal{}, ErrInvalidCredentials
		}
		return account.Principal{}, err
	}

	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password()))
	if err != nil {
		return account.Principal{}, ErrInvalidCredentials
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return account.Principal{}, err
	}

	return account.Principal{
		ID:      accountID,
		Email:   email,
		Role:    account.Role(role),
		Country: kernel.Country(country),
	}, nil
}
