package create_reserve

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ReserveRepository интерфейс репозитория резервов
type ReserveRepository interface {
	Create(ctx context.Context, reserve *domain.Reserve) (*domain.Reserve, error)
	RangesForRoom(ctx context.Context, roomID int64) ([]domain.DateRange, error)
	RangesForUser(ctx context.Context, userID int64) ([]domain.DateRange, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
}

// Mailer интерфейс клиента почтового релея
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
