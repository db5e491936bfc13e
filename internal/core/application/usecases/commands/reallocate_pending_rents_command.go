package commands

import (
	"errors"

	"parcellocker/internal/pkg/guard"
)

var (
	ErrReallocatePendingRentsCommandIsNotConstructed = errors.New(
		"ReallocatePendingRentsCommand must be created via NewReallocatePendingRentsCommand constructor",
	)
	// ErrNoPendingRents signals an empty CREATED backlog. The scheduled job
	// treats it as a normal idle tick rather than a failure.
	ErrNoPendingRents = errors.New("no rents waiting for allocation")
)

// ReallocatePendingRentsCommand retries locker allocation for every rent
// stuck in CREATED status. It is parameterless: the backlog itself is the
// input.
type ReallocatePendingRentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReallocatePendingRentsCommand creates a backlog sweep command.
func NewReallocatePendingRentsCommand() ReallocatePendingRentsCommand {
	return ReallocatePendingRentsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReallocatePendingRentsCommand) Validate() error {
	return c.guard.Validate(ErrReallocatePendingRentsCommandIsNotConstructed)
}
