package reserves

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ReserveRepository интерфейс репозитория броней
type ReserveRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserve, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Reserve, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
