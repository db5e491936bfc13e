package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/pkg/errs"
)

// ErrEmailAlreadyInUse is returned when registering with an email that
// belongs to an existing account.
var ErrEmailAlreadyInUse = errs.NewConflictError("Email already in use")

// RegisterAccountCommandHandler handles signup: enforces email uniqueness,
// hashes the password with bcrypt and persists the account.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Fails with ErrEmailAlreadyInUse when the email is taken; otherwise hashes
// the password and stores the new account within a transaction.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return ErrEmailAlreadyInUse
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(), cmd.Name(), cmd.Email(), string(hash), cmd.Role(), cmd.Country())
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
