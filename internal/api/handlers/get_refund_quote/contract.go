package get_refund_quote

import (
	"context"

	cancelReserve "github.com/m04kA/SMC-HotelService/internal/usecase/cancel_reserve"
)

type CancelReserveUseCase interface {
	Quote(ctx context.Context, reserveID, userID int64) (*cancelReserve.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
