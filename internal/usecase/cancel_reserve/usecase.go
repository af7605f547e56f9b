package cancel_reserve

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mailer"
	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
)

// UseCase use case отмены резерва: расчет возврата и подтвержденная отмена
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

// Quote рассчитывает возврат при отмене резерва на текущий день
// Ничего не изменяет - используется для показа клиенту перед подтверждением
func (uc *UseCase) Quote(ctx context.Context, reserveID, userID int64) (*QuoteResponse, error) {
	uc.logger.Info("CancelQuote: reserve=%d, user=%d", reserveID, userID)

	reserve, err := uc.getOwnedReserve(ctx, reserveID, userID, "CancelQuote")
	if err != nil {
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, reserve.RoomID)
	if err != nil {
		uc.logger.Error("CancelQuote: failed to get room id=%d: %v", reserve.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	quote := domain.QuoteRefund(uc.timeProvider.Now(), reserve.Range(), room.NightlyPrice)

	uc.logger.Info("CancelQuote: reserve=%d, refundable_nights=%d, delayed=%t, amount=%d",
		reserveID, quote.RefundableNights, quote.Delayed, quote.Amount)

	return &QuoteResponse{
		ReserveID:        reserve.ID,
		RoomNumber:       room.Number,
		CheckIn:          reserve.CheckIn,
		CheckOut:         reserve.CheckOut,
		RefundableNights: quote.RefundableNights,
		Delayed:          quote.Delayed,
		Amount:           quote.Amount,
	}, nil
}

// Execute выполняет подтвержденную отмену: удаляет резерв и отправляет письмо
// Письмо об отмене отправляется только если проживание еще не закончилось;
// ошибка отправки не откатывает уже выполненное удаление
func (uc *UseCase) Execute(ctx context.Context, reserveID, userID int64, userEmail string) error {
	uc.logger.Info("CancelReserve: reserve=%d, user=%d", reserveID, userID)

	var reserve *domain.Reserve

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		r, err := uc.getOwnedReserve(txCtx, reserveID, userID, "CancelReserve")
		if err != nil {
			return err
		}

		if err := uc.reserveRepo.Delete(txCtx, reserveID); err != nil {
			if errors.Is(err, reserveRepo.ErrReserveNotFound) {
				return ErrReserveNotFound
			}
			uc.logger.Error("CancelReserve: failed to delete reserve id=%d: %v", reserveID, err)
			return fmt.Errorf("%w: failed to delete reserve: %v", ErrInternal, err)
		}

		reserve = r
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelReserve: successfully deleted reserve id=%d", reserveID)

	if userEmail != "" && !reserve.HasElapsed(uc.timeProvider.Now()) {
		subject, body := mailer.CancellationMail()
		if err := uc.mailer.Send(ctx, userEmail, subject, body); err != nil {
			uc.logger.Error("CancelReserve: failed to send cancellation mail to %s: %v", userEmail, err)
		}
	}

	return nil
}

// getOwnedReserve получает резерв и проверяет, что он принадлежит пользователю
func (uc *UseCase) getOwnedReserve(ctx context.Context, reserveID, userID int64, op string) (*domain.Reserve, error) {
	reserve, err := uc.reserveRepo.GetByID(ctx, reserveID)
	if err != nil {
		if errors.Is(err, reserveRepo.ErrReserveNotFound) {
			uc.logger.Warn("%s: reserve id=%d not found", op, reserveID)
			return nil, ErrReserveNotFound
		}
		uc.logger.Error("%s: failed to get reserve id=%d: %v", op, reserveID, err)
		return nil, fmt.Errorf("%w: failed to get reserve: %v", ErrInternal, err)
	}

	if !reserve.IsOwnedBy(userID) {
		uc.logger.Warn("%s: reserve id=%d belongs to client=%d, requested by user=%d",
			op, reserveID, reserve.ClientID, userID)
		return nil, ErrForbidden
	}

	return reserve, nil
}
