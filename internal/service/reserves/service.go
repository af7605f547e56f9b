package reserves

import (
	"context"
	"errors"
	"fmt"

	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
	"github.com/m04kA/SMC-HotelService/internal/service/reserves/models"
)

// Service сервис для просмотра броней
type Service struct {
	reserveRepo ReserveRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reserveRepo ReserveRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		reserveRepo: reserveRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// GetByID получает бронь по ID
// Проверяет права доступа - пользователь может видеть только свою бронь
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReserveResponse, error) {
	s.logger.Info("GetByID: fetching reserve id=%d for user=%d", id, userID)

	reserve, err := s.reserveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserveRepo.ErrReserveNotFound) {
			s.logger.Warn("GetByID: reserve id=%d not found", id)
			return nil, ErrReserveNotFound
		}
		s.logger.Error("GetByID: repository error for reserve id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !reserve.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to reserve id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	room, err := s.roomRepo.GetByID(ctx, reserve.RoomID)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch room id=%d for reserve id=%d: %v", reserve.RoomID, id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to fetch room: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reserve id=%d", id)
	return models.FromDomainReserve(reserve, room), nil
}

// GetUserReserves получает историю броней пользователя
func (s *Service) GetUserReserves(ctx context.Context, userID int64) (*models.ReserveListResponse, error) {
	s.logger.Info("GetUserReserves: fetching reserves for user=%d", userID)

	reserves, err := s.reserveRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserReserves: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReserves - repository error: %v", ErrInternal, err)
	}

	resp := &models.ReserveListResponse{
		Reserves: make([]models.ReserveResponse, 0, len(reserves)),
	}

	for _, reserve := range reserves {
		room, err := s.roomRepo.GetByID(ctx, reserve.RoomID)
		if err != nil {
			s.logger.Error("GetUserReserves: failed to fetch room id=%d for reserve id=%d: %v", reserve.RoomID, reserve.ID, err)
			return nil, fmt.Errorf("%w: GetUserReserves - failed to fetch room: %v", ErrInternal, err)
		}
		resp.Reserves = append(resp.Reserves, *models.FromDomainReserve(reserve, room))
	}

	s.logger.Info("GetUserReserves: successfully fetched %d reserves for user=%d", len(resp.Reserves), userID)
	return resp, nil
}
