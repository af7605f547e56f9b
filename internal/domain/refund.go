package domain

import "time"

// RefundQuote is the result of pricing a cancellation. It is a value object,
// never persisted.
type RefundQuote struct {
	RefundableNights int
	Delayed          bool  // the stay has fully elapsed, nothing to refund
	Amount           int64 // RefundableNights * nightly price, 0 when Delayed
}

// QuoteRefund computes how much of a reserve is refundable when cancelled at
// "now". The caller supplies now explicitly; the calculator never touches the
// wall clock.
//
// Policy, in precedence order:
//  1. cancel strictly before arrival: every night is refunded
//  2. cancel on the arrival day: one night is forfeited (clamped at zero for
//     a one-night stay)
//  3. cancel after the stay has fully elapsed: nothing is refunded and the
//     quote is marked Delayed
//  4. cancel mid-stay: the remaining nights are refunded
func QuoteRefund(now time.Time, r DateRange, nightlyPrice int64) RefundQuote {
	today := DateOnly(now)

	var quote RefundQuote
	switch {
	case today.Before(r.CheckIn):
		quote.RefundableNights = r.Nights()
	case today.Equal(r.CheckIn):
		quote.RefundableNights = r.Nights() - 1
		if quote.RefundableNights < 0 {
			quote.RefundableNights = 0
		}
	case today.After(r.CheckOut):
		quote.Delayed = true
	default:
		quote.RefundableNights = NightsBetween(today, r.CheckOut)
	}

	if !quote.Delayed {
		quote.Amount = int64(quote.RefundableNights) * nightlyPrice
	}
	return quote
}
