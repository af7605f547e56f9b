package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo   RoomRepository
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	roomRepo RoomRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:   roomRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// List возвращает страницу каталога номеров
// Номера отсортированы по возрастанию, страницы нумеруются с 1
func (s *Service) List(ctx context.Context, page int64) (*models.RoomListResponse, error) {
	if page < 1 {
		s.logger.Warn("List: invalid page=%d", page)
		return nil, ErrInvalidPage
	}

	s.logger.Info("List: fetching rooms page=%d", page)

	limit := uint64(domain.RoomsPageSize)
	offset := uint64(page-1) * limit

	rooms, err := s.roomRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error for page=%d: %v", page, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.RoomListResponse{
		Rooms: make([]models.RoomResponse, 0, len(rooms)),
		Page:  page,
	}

	for _, room := range rooms {
		rating, err := s.averageRating(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		resp.Rooms = append(resp.Rooms, *models.FromDomainRoom(room, rating))
	}

	s.logger.Info("List: successfully fetched %d rooms for page=%d", len(resp.Rooms), page)
	return resp, nil
}

// GetByNumber возвращает номер по его видимому номеру
func (s *Service) GetByNumber(ctx context.Context, number int) (*models.RoomResponse, error) {
	s.logger.Info("GetByNumber: fetching room number=%d", number)

	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByNumber: room number=%d not found", number)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByNumber: repository error for room number=%d: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	rating, err := s.averageRating(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByNumber: successfully fetched room number=%d", number)
	return models.FromDomainRoom(room, rating), nil
}

// averageRating возвращает средний рейтинг номера
// Номер без отзывов получает рейтинг по умолчанию
func (s *Service) averageRating(ctx context.Context, roomID int64) (float64, error) {
	rating, hasReviews, err := s.reviewRepo.AverageRating(ctx, roomID)
	if err != nil {
		s.logger.Error("averageRating: repository error for room id=%d: %v", roomID, err)
		return 0, fmt.Errorf("%w: averageRating - repository error: %v", ErrInternal, err)
	}
	if !hasReviews {
		return domain.DefaultRating, nil
	}
	return rating, nil
}
