package payout

import (
	"math"
	"math/bits"

	"github.com/osse101/wheelbet/internal/domain"
)

// Settle computes the outcome of a spin. The house segment loses the stake;
// every other segment returns bet × multiplier. The new balance is not
// clamped and may reach zero or go negative. Callers must check Fits first.
func Settle(bet domain.Bet, segment domain.Segment, balance int64) domain.Outcome {
	if segment.IsLosing() {
		return domain.Outcome{
			Segment:    segment,
			Bet:        bet.Amount,
			Delta:      -bet.Amount,
			NewBalance: balance - bet.Amount,
		}
	}

	gain := bet.Amount * int64(segment.Multiplier)
	return domain.Outcome{
		Segment:    segment,
		Bet:        bet.Amount,
		Gain:       gain,
		Delta:      gain - bet.Amount,
		NewBalance: balance + gain - bet.Amount,
	}
}

// Fits reports whether a bet of amount on balance can be settled against a
// segment paying multiplier without overflowing int64. It expects
// 0 < amount <= balance.
func Fits(amount, balance int64, multiplier int) bool {
	if amount <= 0 || amount > balance || multiplier < 0 {
		return false
	}

	hi, gain := bits.Mul64(uint64(amount), uint64(multiplier))
	if hi != 0 || gain > math.MaxInt64 {
		return false
	}

	sum, carry := bits.Add64(uint64(balance-amount), gain, 0)
	return carry == 0 && sum <= math.MaxInt64
}
