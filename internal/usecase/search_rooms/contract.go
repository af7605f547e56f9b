package search_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	ListWithCapacityAtLeast(ctx context.Context, guests int) ([]*domain.Room, error)
}

// ReserveRepository интерфейс репозитория резервов
type ReserveRepository interface {
	RangesForRoom(ctx context.Context, roomID int64) ([]domain.DateRange, error)
	RangesForUser(ctx context.Context, userID int64) ([]domain.DateRange, error)
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
