package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/rent"
)

// Notifier delivers lifecycle notifications to the parties of a rent.
// Implementations must not block the lifecycle: delivery failures are
// reported but the state transition has already been committed.
type Notifier interface {
	// NotifyDropoff tells the receiver the parcel is in the locker and hands
	// over the one-time pickup code.
	NotifyDropoff(ctx context.Context, aggregate *rent.Rent) error

	// NotifyDelivered tells the sender the parcel was picked up.
	NotifyDelivered(ctx context.Context, aggregate *rent.Rent) error
}
