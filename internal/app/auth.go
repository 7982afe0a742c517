package app

import "context"

// Message prefixes the wallet client signs, one per mutating action.
// The signed string is always "<prefix>:<nonce>".
const (
	QuizMessagePrefix = "CARV-CLAIM"
	SpinMessagePrefix = "CARV-SPIN"
)

// authorize consumes the nonce, then verifies the signature over
// "<prefix>:<nonce>" against the claimed address. The nonce is consumed
// first so a replayed request never reaches the verifier; both checks must
// pass before any state is mutated.
func (s *ArcadeService) authorize(ctx context.Context, address, signature, nonce, prefix string) error {
	if err := s.nonces.Consume(ctx, address, nonce); err != nil {
		return err
	}
	return s.verifier.Verify(address, prefix+":"+nonce, signature)
}
