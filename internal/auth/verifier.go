// Package auth provides SignatureVerifier implementations for the arcade
// service. Wallet clients (Phantom, Backpack) sign challenge strings with the
// ed25519 key behind their address; both the address and the signature travel
// base58-encoded.
package auth

import (
	"crypto/ed25519"
	"fmt"

	"carv-arcade-service/internal/domain"

	"github.com/mr-tron/base58"
)

// Ed25519Verifier verifies base58 ed25519 signatures against base58 addresses.
type Ed25519Verifier struct{}

func NewEd25519Verifier() Ed25519Verifier {
	return Ed25519Verifier{}
}

func (Ed25519Verifier) Verify(address, message, signature string) error {
	pub, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("decode address: %w", domain.ErrBadSignature)
	}
	if len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("address is not an ed25519 key: %w", domain.ErrBadSignature)
	}
	sig, err := base58.Decode(signature)
	if err != nil {
		return fmt.Errorf("decode signature: %w", domain.ErrBadSignature)
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig) {
		return domain.ErrBadSignature
	}
	return nil
}

// AcceptAll trusts every signature. It matches the original mock behavior and
// exists for local development; production wiring must use Ed25519Verifier.
type AcceptAll struct{}

func NewAcceptAll() AcceptAll {
	return AcceptAll{}
}

func (AcceptAll) Verify(string, string, string) error {
	return nil
}
