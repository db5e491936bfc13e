// Package locker contains the Locker aggregate: a sized compartment at a
// bloq with an administrative status and an independent occupancy flag. The
// rent lifecycle engine is the only writer of the status/occupancy pair
// outside of operator corrections.
package locker
