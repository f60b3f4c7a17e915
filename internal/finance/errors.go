// Package finance holds the pure arithmetic behind lifecost: loan
// amortization, expense ledgers, and flat-rate income gross-up.
package finance

import "errors"

var (
	// ErrInvalidArgument is returned for inputs outside a function's domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateCategory is returned when a ledger category is added twice.
	ErrDuplicateCategory = errors.New("duplicate category")
)
