// Package rent contains the Rent aggregate, the lifecycle status machine and
// the one-time pickup code generator. A rent moves through
// CREATED → WAITING_DROPOFF → WAITING_PICKUP → DELIVERED, guarded by the
// sender/receiver authorization rules and the code check at pickup.
package rent
