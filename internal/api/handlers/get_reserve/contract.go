package get_reserve

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reserves/models"
)

type ReserveService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.ReserveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
