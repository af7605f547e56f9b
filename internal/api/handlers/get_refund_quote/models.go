package get_refund_quote

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	cancelReserve "github.com/m04kA/SMC-HotelService/internal/usecase/cancel_reserve"
)

const (
	msgNoRefund     = "За отмену брони деньги вам не вернутся"
	msgRefundFormat = "Вам вернется стоимость за %d ночей с %s по %s в размере %d рублей"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ReserveID        int64  `json:"reserveId"`
	RoomNumber       int    `json:"roomNumber"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	RefundableNights int    `json:"refundableNights"`
	Delayed          bool   `json:"delayed"`
	Amount           int64  `json:"amount"`
	Message          string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Message - готовый текст для показа клиенту перед подтверждением отмены
func FromUseCaseResponse(resp *cancelReserve.QuoteResponse) *QuoteResponse {
	message := msgNoRefund
	if !resp.Delayed && resp.Amount > 0 {
		refundFrom := resp.CheckOut.AddDate(0, 0, -resp.RefundableNights)
		message = fmt.Sprintf(msgRefundFormat,
			resp.RefundableNights,
			refundFrom.Format(domain.DateFormat),
			resp.CheckOut.Format(domain.DateFormat),
			resp.Amount,
		)
	}

	return &QuoteResponse{
		ReserveID:        resp.ReserveID,
		RoomNumber:       resp.RoomNumber,
		CheckIn:          resp.CheckIn.Format(domain.DateFormat),
		CheckOut:         resp.CheckOut.Format(domain.DateFormat),
		RefundableNights: resp.RefundableNights,
		Delayed:          resp.Delayed,
		Amount:           resp.Amount,
		Message:          message,
	}
}
