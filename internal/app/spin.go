package app

import (
	"context"

	"carv-arcade-service/internal/domain"
)

// SpinCost is the fixed entry fee for one reward spin.
const SpinCost = 5

// spinBand maps a cumulative-probability upper bound (exclusive) to a payout
// multiplier. Bands are checked in order against a uniform roll in [0,1):
//
//	[0.00,0.30) x0    [0.30,0.55) x1    [0.55,0.75) x2
//	[0.75,0.80) x5    [0.80,1.00) x1
//
// The last band was once slated to be a reroll; product never shipped it, so
// it pays x1 like the original distribution. Do not change the collapsed
// behavior without revisiting the published odds.
type spinBand struct {
	upper      float64
	multiplier int
}

var spinBands = []spinBand{
	{0.30, 0},
	{0.55, 1},
	{0.75, 2},
	{0.80, 5},
	{1.00, 1},
}

func multiplierFor(roll float64) int {
	for _, band := range spinBands {
		if roll < band.upper {
			return band.multiplier
		}
	}
	return spinBands[len(spinBands)-1].multiplier
}

// Spin authorizes the request, deducts the spin cost, draws a multiplier, and
// credits the payout. All of it happens inside the address's critical section
// so concurrent spins can neither double-spend a nonce nor corrupt the
// balance; the ledger records a single spin event carrying the net delta.
func (s *ArcadeService) Spin(ctx context.Context, req SpinRequest) (domain.SpinResult, error) {
	lock := s.locks.forAddress(req.Address)
	lock.Lock()
	defer lock.Unlock()

	if err := s.authorize(ctx, req.Address, req.Signature, req.Nonce, SpinMessagePrefix); err != nil {
		return domain.SpinResult{}, err
	}

	account, err := s.ledger.GetOrCreate(ctx, req.Address)
	if err != nil {
		return domain.SpinResult{}, err
	}
	if account.TotalPoints < SpinCost {
		return domain.SpinResult{}, domain.ErrInsufficientPoints
	}

	multiplier := multiplierFor(s.roll())
	delta := multiplier*SpinCost - SpinCost

	account, err = s.ledger.Apply(ctx, req.Address, delta, s.newEvent(domain.EventSpin, delta))
	if err != nil {
		return domain.SpinResult{}, err
	}

	s.broadcast(ctx)
	return domain.SpinResult{
		Multiplier:  multiplier,
		PointsDelta: delta,
		TotalPoints: account.TotalPoints,
	}, nil
}
