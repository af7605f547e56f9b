package create_reserve

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mailer"
	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case для создания резерва комнаты
type UseCase struct {
	reserveRepo  ReserveRepository
	roomRepo     RoomRepository
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reserveRepo ReserveRepository,
	roomRepo RoomRepository,
	mailerClient Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reserveRepo:  reserveRepo,
		roomRepo:     roomRepo,
		mailer:       mailerClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания резерва
// Проверка доступности, проверка конфликтов клиента и вставка выполняются в
// одной сериализуемой транзакции с блокировкой строк, чтобы две конкурентные
// брони на пересекающиеся даты не прошли обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReserve: user=%d, room=%d, check_in=%s, check_out=%s, guests=%d",
		req.UserID, req.RoomNumber, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReserve: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат относительно текущего дня
	now := uc.timeProvider.Now()
	rng, err := validateRange(req, now)
	if err != nil {
		uc.logger.Warn("CreateReserve: range validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем комнату
	room, err := uc.roomRepo.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReserve: room number=%d not found", req.RoomNumber)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReserve: failed to get room number=%d: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость комнаты
	if !room.Fits(req.GuestCount) {
		uc.logger.Warn("CreateReserve: room number=%d fits %d guests, requested %d",
			req.RoomNumber, room.Capacity, req.GuestCount)
		return nil, ErrCapacityExceeded
	}

	var result *domain.Reserve

	// 5. Проверки и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Занятые даты комнаты (строки блокируются FOR UPDATE)
		roomRanges, err := uc.reserveRepo.RangesForRoom(txCtx, room.ID)
		if err != nil {
			uc.logger.Error("CreateReserve: failed to get room ranges: %v", err)
			return fmt.Errorf("%w: failed to get room ranges: %v", ErrInternal, err)
		}

		if !domain.IsAvailable(rng, roomRanges) {
			uc.logger.Warn("CreateReserve: room number=%d not available for %s - %s",
				req.RoomNumber, rng.CheckIn.Format(domain.DateFormat), rng.CheckOut.Format(domain.DateFormat))
			return ErrRoomUnavailable
		}

		// 5.2. Существующие брони клиента по всем комнатам
		userRanges, err := uc.reserveRepo.RangesForUser(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("CreateReserve: failed to get user ranges: %v", err)
			return fmt.Errorf("%w: failed to get user ranges: %v", ErrInternal, err)
		}

		if domain.HasConflict(rng, userRanges) {
			uc.logger.Warn("CreateReserve: user=%d already holds a reserve overlapping %s - %s",
				req.UserID, rng.CheckIn.Format(domain.DateFormat), rng.CheckOut.Format(domain.DateFormat))
			return ErrUserConflict
		}

		// 5.3. Создаем резерв
		created, err := uc.reserveRepo.Create(txCtx, &domain.Reserve{
			RoomID:     room.ID,
			ClientID:   req.UserID,
			CheckIn:    rng.CheckIn,
			CheckOut:   rng.CheckOut,
			GuestCount: req.GuestCount,
		})
		if err != nil {
			// Exclusion constraint'ы БД - последняя линия защиты
			if errors.Is(err, reserveRepo.ErrDatesUnavailable) {
				return ErrRoomUnavailable
			}
			if errors.Is(err, reserveRepo.ErrClientDatesConflict) {
				return ErrUserConflict
			}
			uc.logger.Error("CreateReserve: failed to create reserve: %v", err)
			return fmt.Errorf("%w: failed to create reserve: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReserve: successfully created reserve id=%d", result.ID)

	// 6. Письмо-подтверждение после коммита
	// Ошибка отправки не откатывает уже закоммиченную бронь - только логируется
	if req.UserEmail != "" {
		subject, body := mailer.ConfirmationMail(req.UserName, room.Number, rng.CheckIn, rng.CheckOut, req.GuestCount)
		if err := uc.mailer.Send(ctx, req.UserEmail, subject, body); err != nil {
			uc.logger.Error("CreateReserve: failed to send confirmation mail to %s: %v", req.UserEmail, err)
		}
	}

	nights := rng.Nights()
	return &Response{
		ID:         result.ID,
		RoomNumber: room.Number,
		CheckIn:    result.CheckIn,
		CheckOut:   result.CheckOut,
		GuestCount: result.GuestCount,
		Nights:     nights,
		FullPrice:  room.FullPrice(nights),
		CreatedAt:  result.CreatedAt,
	}, nil
}
