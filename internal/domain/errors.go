package domain

import "errors"

var (
	// ErrInvalidNonce is returned when a nonce is missing, mismatched, expired,
	// or already consumed.
	ErrInvalidNonce = errors.New("invalid or expired nonce")
	// ErrBadSignature is returned when signature verification fails for the
	// claimed address.
	ErrBadSignature = errors.New("signature verification failed")
	// ErrInsufficientPoints is returned when a spin is attempted below the spin cost.
	ErrInsufficientPoints = errors.New("not enough points to spin")
	// ErrAccountNotFound indicates a profile lookup for an address the ledger
	// has never seen. Most callers ensure-or-create instead of hitting this.
	ErrAccountNotFound = errors.New("account not found")
)
