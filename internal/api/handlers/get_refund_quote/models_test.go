package get_refund_quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	cancelReserve "github.com/m04kA/SMC-HotelService/internal/usecase/cancel_reserve"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromUseCaseResponse(t *testing.T) {
	t.Run("refundable cancellation", func(t *testing.T) {
		resp := FromUseCaseResponse(&cancelReserve.QuoteResponse{
			ReserveID:        1,
			RoomNumber:       101,
			CheckIn:          date(2022, 9, 17),
			CheckOut:         date(2022, 9, 27),
			RefundableNights: 7,
			Amount:           4900,
		})

		assert.Equal(t, "2022-09-17", resp.CheckIn)
		assert.Equal(t, "Вам вернется стоимость за 7 ночей с 2022-09-20 по 2022-09-27 в размере 4900 рублей", resp.Message)
	})

	t.Run("delayed cancellation", func(t *testing.T) {
		resp := FromUseCaseResponse(&cancelReserve.QuoteResponse{
			ReserveID:  1,
			RoomNumber: 101,
			CheckIn:    date(2022, 9, 17),
			CheckOut:   date(2022, 9, 27),
			Delayed:    true,
		})

		assert.True(t, resp.Delayed)
		assert.Equal(t, "За отмену брони деньги вам не вернутся", resp.Message)
	})

	t.Run("zero refund on arrival day of one-night stay", func(t *testing.T) {
		resp := FromUseCaseResponse(&cancelReserve.QuoteResponse{
			ReserveID:        1,
			RoomNumber:       101,
			CheckIn:          date(2022, 9, 27),
			CheckOut:         date(2022, 9, 28),
			RefundableNights: 0,
			Amount:           0,
		})

		assert.Equal(t, "За отмену брони деньги вам не вернутся", resp.Message)
	})
}
