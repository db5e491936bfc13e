// Package account contains the Account aggregate and the Principal
// projection used for per-request authorization decisions.
package account
