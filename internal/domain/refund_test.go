package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(DateFormat, s)
	require.NoError(t, err)
	return ts
}

func TestQuoteRefund(t *testing.T) {
	const nightlyPrice = int64(700)

	tests := []struct {
		name       string
		now        string
		checkIn    string
		checkOut   string
		wantNights int
		wantDelay  bool
		wantAmount int64
	}{
		{
			name:       "cancel before arrival refunds every night",
			now:        "2022-09-10",
			checkIn:    "2022-09-17",
			checkOut:   "2022-09-27",
			wantNights: 10,
			wantAmount: 7000,
		},
		{
			name:       "cancel on arrival day forfeits one night",
			now:        "2022-09-17",
			checkIn:    "2022-09-17",
			checkOut:   "2022-09-27",
			wantNights: 9,
			wantAmount: 6300,
		},
		{
			name:       "one night stay cancelled on arrival day refunds nothing",
			now:        "2022-09-27",
			checkIn:    "2022-09-27",
			checkOut:   "2022-09-28",
			wantNights: 0,
			wantAmount: 0,
		},
		{
			name:       "cancel mid-stay refunds remaining nights",
			now:        "2022-09-20",
			checkIn:    "2022-09-17",
			checkOut:   "2022-09-27",
			wantNights: 7,
			wantAmount: 4900,
		},
		{
			name:       "cancel on checkout day refunds nothing",
			now:        "2022-09-27",
			checkIn:    "2022-09-17",
			checkOut:   "2022-09-27",
			wantNights: 0,
			wantAmount: 0,
		},
		{
			name:      "cancel after the stay is delayed",
			now:       "2022-09-30",
			checkIn:   "2022-09-17",
			checkOut:  "2022-09-27",
			wantDelay: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DateRange{CheckIn: mustParse(t, tt.checkIn), CheckOut: mustParse(t, tt.checkOut)}
			quote := QuoteRefund(mustParse(t, tt.now), r, nightlyPrice)

			assert.Equal(t, tt.wantNights, quote.RefundableNights)
			assert.Equal(t, tt.wantDelay, quote.Delayed)
			assert.Equal(t, tt.wantAmount, quote.Amount)
		})
	}
}
