// Package kernel contains the shared value objects of the domain model:
// entity identifiers and the closed Country and Size enumerations that the
// bloq, locker, rent and account aggregates agree on.
//
// All value objects are immutable. The zero value of UUID is invalid and the
// enumerations reserve their zero value for "unknown", so values arriving
// from persistence or transport must be validated before use.
package kernel
