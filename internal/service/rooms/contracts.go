package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.Room, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	AverageRating(ctx context.Context, roomID int64) (float64, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
