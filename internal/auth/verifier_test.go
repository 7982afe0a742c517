package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"

	"carv-arcade-service/internal/domain"

	"github.com/mr-tron/base58"
)

func keypair(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return base58.Encode(pub), priv
}

func TestEd25519VerifierAcceptsValidSignature(t *testing.T) {
	address, priv := keypair(t)
	message := "CARV-SPIN:some-nonce"
	signature := base58.Encode(ed25519.Sign(priv, []byte(message)))

	if err := NewEd25519Verifier().Verify(address, message, signature); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}
}

func TestEd25519VerifierRejectsWrongSigner(t *testing.T) {
	address, _ := keypair(t)
	_, otherPriv := keypair(t)
	message := "CARV-CLAIM:some-nonce"
	signature := base58.Encode(ed25519.Sign(otherPriv, []byte(message)))

	if err := NewEd25519Verifier().Verify(address, message, signature); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("expected bad signature, got %v", err)
	}
}

func TestEd25519VerifierRejectsTamperedMessage(t *testing.T) {
	address, priv := keypair(t)
	signature := base58.Encode(ed25519.Sign(priv, []byte("CARV-SPIN:nonce-a")))

	if err := NewEd25519Verifier().Verify(address, "CARV-SPIN:nonce-b", signature); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("expected bad signature, got %v", err)
	}
}

func TestEd25519VerifierRejectsMalformedInputs(t *testing.T) {
	verifier := NewEd25519Verifier()
	if err := verifier.Verify("not-base58-0OIl", "msg", "sig"); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("expected bad signature for malformed address, got %v", err)
	}
	address, _ := keypair(t)
	if err := verifier.Verify(address, "msg", "not-base58-0OIl"); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("expected bad signature for malformed signature, got %v", err)
	}
	if err := verifier.Verify(base58.Encode([]byte("short")), "msg", "sig"); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("expected bad signature for short key, got %v", err)
	}
}

func TestAcceptAllTrustsEverything(t *testing.T) {
	if err := NewAcceptAll().Verify("any", "any", "any"); err != nil {
		t.Fatalf("accept-all must not fail, got %v", err)
	}
}
