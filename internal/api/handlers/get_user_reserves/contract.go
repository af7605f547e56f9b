package get_user_reserves

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reserves/models"
)

type ReserveService interface {
	GetUserReserves(ctx context.Context, userID int64) (*models.ReserveListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
