package create_reserve

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomNumber <= 0 {
		return fmt.Errorf("%w: roomNumber must be positive", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount {
		return ErrInvalidGuestCount
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	return nil
}

// validateRange проверяет диапазон дат брони
// Заезд должен быть строго раньше выезда и строго позже сегодняшнего дня:
// бронирования задним числом и день в день не принимаются
func validateRange(req *Request, now time.Time) (domain.DateRange, error) {
	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.DateRange{}, ErrInvalidRange
	}

	today := domain.DateOnly(now)
	if !rng.CheckIn.After(today) {
		return domain.DateRange{}, fmt.Errorf("%w: check-in must be after today", ErrInvalidRange)
	}

	return rng, nil
}
