package cancel_reserve

import "context"

type CancelReserveUseCase interface {
	Execute(ctx context.Context, reserveID, userID int64, userEmail string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
