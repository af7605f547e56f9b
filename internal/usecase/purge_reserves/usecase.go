package purge_reserves

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase реализует очистку броней, завершившихся более domain.PurgeAfterDays дней назад
type UseCase struct {
	reserveRepo  ReserveRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(reserveRepo ReserveRepository, logger Logger) *UseCase {
	return &UseCase{
		reserveRepo:  reserveRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute удаляет брони с датой выезда раньше порога хранения.
// Возвращает количество удалённых записей. Повторный запуск безопасен.
func (uc *UseCase) Execute(ctx context.Context) (int64, error) {
	cutoff := domain.DateOnly(uc.timeProvider.Now()).AddDate(0, 0, -domain.PurgeAfterDays)

	purged, err := uc.reserveRepo.PurgeCheckedOutBefore(ctx, cutoff)
	if err != nil {
		uc.logger.Error("purge_reserves: Execute - failed to purge reserves before %s: %v", cutoff.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: Execute - failed to purge reserves: %v", ErrInternal, err)
	}

	uc.logger.Info("purge_reserves: Execute - purged %d reserves checked out before %s", purged, cutoff.Format(domain.DateFormat))
	return purged, nil
}
