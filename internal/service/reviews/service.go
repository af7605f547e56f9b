package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
	reviewRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/review"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/reviews/models"
)

// Service сервис отзывов о номерах
type Service struct {
	reviewRepo  ReviewRepository
	reserveRepo ReserveRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	reserveRepo ReserveRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		reserveRepo: reserveRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Add добавляет отзыв по брони
// Отзыв может оставить только владелец брони, по одной брони - один отзыв
func (s *Service) Add(ctx context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Add: adding review for reserve id=%d by user=%d", req.ReserveID, req.UserID)

	if !domain.ValidRating(req.Rating) {
		s.logger.Warn("Add: invalid rating=%d for reserve id=%d", req.Rating, req.ReserveID)
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Body) == "" {
		s.logger.Warn("Add: empty review body for reserve id=%d", req.ReserveID)
		return nil, fmt.Errorf("%w: empty review body", ErrInvalidInput)
	}

	reserve, err := s.reserveRepo.GetByID(ctx, req.ReserveID)
	if err != nil {
		if errors.Is(err, reserveRepo.ErrReserveNotFound) {
			s.logger.Warn("Add: reserve id=%d not found", req.ReserveID)
			return nil, ErrReserveNotFound
		}
		s.logger.Error("Add: repository error for reserve id=%d: %v", req.ReserveID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	if !reserve.IsOwnedBy(req.UserID) {
		s.logger.Warn("Add: access denied for user=%d to reserve id=%d", req.UserID, req.ReserveID)
		return nil, ErrAccessDenied
	}

	review := &domain.Review{
		RoomID:    reserve.RoomID,
		AuthorID:  req.UserID,
		ReserveID: req.ReserveID,
		Rating:    req.Rating,
		Body:      req.Body,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Add: reserve id=%d already reviewed", req.ReserveID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("Add: repository error creating review for reserve id=%d: %v", req.ReserveID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully added review id=%d for reserve id=%d", created.ID, req.ReserveID)
	return models.FromDomainReview(created), nil
}

// ListByRoom возвращает отзывы по номеру вместе со средним рейтингом
// Номер без отзывов получает рейтинг по умолчанию
func (s *Service) ListByRoom(ctx context.Context, roomNumber int) (*models.ReviewListResponse, error) {
	s.logger.Info("ListByRoom: fetching reviews for room number=%d", roomNumber)

	room, err := s.roomRepo.GetByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("ListByRoom: room number=%d not found", roomNumber)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("ListByRoom: repository error for room number=%d: %v", roomNumber, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		s.logger.Error("ListByRoom: repository error listing reviews for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	rating, hasReviews, err := s.reviewRepo.AverageRating(ctx, room.ID)
	if err != nil {
		s.logger.Error("ListByRoom: repository error computing rating for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}
	if !hasReviews {
		rating = domain.DefaultRating
	}

	s.logger.Info("ListByRoom: successfully fetched %d reviews for room number=%d", len(reviews), roomNumber)
	return models.FromDomainReviewList(reviews, rating), nil
}
