package reviews

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.Review, error)
	AverageRating(ctx context.Context, roomID int64) (float64, bool, error)
}

// ReserveRepository интерфейс репозитория броней
type ReserveRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserve, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
