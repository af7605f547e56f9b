package get_room_reviews

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reviews/models"
)

type ReviewService interface {
	ListByRoom(ctx context.Context, roomNumber int) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
