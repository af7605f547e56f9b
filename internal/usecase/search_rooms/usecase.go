package search_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case подбора свободных комнат на даты
type UseCase struct {
	roomRepo    RoomRepository
	reserveRepo ReserveRepository
	reviewRepo  ReviewRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reserveRepo ReserveRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		reserveRepo: reserveRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

// Execute выполняет подбор: комнаты нужной вместимости, свободные на весь
// диапазон, с ценой за период и средним рейтингом
// Подбор работает по снимку данных без блокировок - финальную проверку
// доступности делает создание брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchRooms: user=%d, check_in=%s, check_out=%s, guests=%d",
		req.UserID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.GuestCount)

	if req.GuestCount < domain.MinGuestCount {
		return nil, ErrInvalidGuestCount
	}

	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("SearchRooms: invalid range: %v", err)
		return nil, ErrInvalidRange
	}

	// Клиент с существующей бронью на эти даты все равно не сможет забронировать
	userRanges, err := uc.reserveRepo.RangesForUser(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to get user ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get user ranges: %v", ErrInternal, err)
	}
	if domain.HasConflict(rng, userRanges) {
		uc.logger.Warn("SearchRooms: user=%d already holds a reserve overlapping the requested dates", req.UserID)
		return nil, ErrUserConflict
	}

	rooms, err := uc.roomRepo.ListWithCapacityAtLeast(ctx, req.GuestCount)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	nights := rng.Nights()
	offers := make([]RoomOffer, 0, len(rooms))

	for _, room := range rooms {
		roomRanges, err := uc.reserveRepo.RangesForRoom(ctx, room.ID)
		if err != nil {
			uc.logger.Error("SearchRooms: failed to get ranges for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to get room ranges: %v", ErrInternal, err)
		}

		if !domain.IsAvailable(rng, roomRanges) {
			continue
		}

		rating, hasReviews, err := uc.reviewRepo.AverageRating(ctx, room.ID)
		if err != nil {
			uc.logger.Error("SearchRooms: failed to get rating for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to get room rating: %v", ErrInternal, err)
		}
		if !hasReviews {
			rating = domain.DefaultRating
		}

		offers = append(offers, RoomOffer{
			RoomNumber:    room.Number,
			NightlyPrice:  room.NightlyPrice,
			Capacity:      room.Capacity,
			Nights:        nights,
			FullPrice:     room.FullPrice(nights),
			AverageRating: rating,
		})
	}

	uc.logger.Info("SearchRooms: found %d free rooms for user=%d", len(offers), req.UserID)

	return &Response{
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
		GuestCount: req.GuestCount,
		Rooms:      offers,
	}, nil
}
