// Package bloq contains the Bloq aggregate: a physical site that hosts
// lockers and serves exactly one country. Bloqs are created by operators;
// rents are never attached to a bloq directly, only through its lockers.
package bloq
