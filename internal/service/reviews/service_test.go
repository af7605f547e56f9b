package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
	reviewRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/review"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/reviews/models"
)

// Стабы репозиториев

type fakeReviewRepo struct {
	nextID  int64
	reviews map[int64]*domain.Review // по reserve_id
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if _, ok := f.reviews[review.ReserveID]; ok {
		return nil, reviewRepo.ErrDuplicateReview
	}

	f.nextID++
	created := *review
	created.ID = f.nextID
	created.PubDate = time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	f.reviews[review.ReserveID] = &created
	return &created, nil
}

func (f *fakeReviewRepo) ListByRoom(_ context.Context, roomID int64) ([]*domain.Review, error) {
	var list []*domain.Review
	for _, review := range f.reviews {
		if review.RoomID == roomID {
			list = append(list, review)
		}
	}
	return list, nil
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, roomID int64) (float64, bool, error) {
	var sum, count int
	for _, review := range f.reviews {
		if review.RoomID == roomID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, false, nil
	}
	return float64(sum) / float64(count), true, nil
}

type fakeReserveRepo struct {
	reserves map[int64]*domain.Reserve
}

func (f *fakeReserveRepo) GetByID(_ context.Context, id int64) (*domain.Reserve, error) {
	reserve, ok := f.reserves[id]
	if !ok {
		return nil, reserveRepo.ErrReserveNotFound
	}
	return reserve, nil
}

type fakeRoomRepo struct {
	rooms map[int]*domain.Room
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, number int) (*domain.Room, error) {
	room, ok := f.rooms[number]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeReviewRepo) {
	reviews := &fakeReviewRepo{reviews: map[int64]*domain.Review{}}
	reserves := &fakeReserveRepo{
		reserves: map[int64]*domain.Reserve{
			1: {ID: 1, RoomID: 10, ClientID: 42},
		},
	}
	rooms := &fakeRoomRepo{
		rooms: map[int]*domain.Room{
			101: {ID: 10, Number: 101, NightlyPrice: 700, Capacity: 2},
		},
	}
	return NewService(reviews, reserves, rooms, nopLogger{}), reviews
}

func addRequest() *models.AddReviewRequest {
	return &models.AddReviewRequest{
		UserID:    42,
		ReserveID: 1,
		Rating:    4,
		Body:      "Чисто и тихо, рекомендую",
	}
}

func TestAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, reviews := newFixture()

		resp, err := svc.Add(context.Background(), addRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, 4, resp.Rating)

		// Отзыв привязан к комнате резерва
		created := reviews.reviews[1]
		assert.Equal(t, int64(10), created.RoomID)
		assert.Equal(t, int64(42), created.AuthorID)
	})

	t.Run("invalid rating", func(t *testing.T) {
		svc, _ := newFixture()

		req := addRequest()
		req.Rating = 6
		_, err := svc.Add(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("empty body", func(t *testing.T) {
		svc, _ := newFixture()

		req := addRequest()
		req.Body = "   "
		_, err := svc.Add(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reserve not found", func(t *testing.T) {
		svc, _ := newFixture()

		req := addRequest()
		req.ReserveID = 99
		_, err := svc.Add(context.Background(), req)
		assert.ErrorIs(t, err, ErrReserveNotFound)
	})

	t.Run("foreign reserve forbidden", func(t *testing.T) {
		svc, _ := newFixture()

		req := addRequest()
		req.UserID = 7
		_, err := svc.Add(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("second review rejected", func(t *testing.T) {
		svc, _ := newFixture()

		_, err := svc.Add(context.Background(), addRequest())
		require.NoError(t, err)

		_, err = svc.Add(context.Background(), addRequest())
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})
}

func TestListByRoom(t *testing.T) {
	t.Run("room without reviews has default rating", func(t *testing.T) {
		svc, _ := newFixture()

		resp, err := svc.ListByRoom(context.Background(), 101)
		require.NoError(t, err)
		assert.Empty(t, resp.Reviews)
		assert.Equal(t, domain.DefaultRating, resp.AverageRating)
	})

	t.Run("reviews with average", func(t *testing.T) {
		svc, reviews := newFixture()

		reviews.reviews[1] = &domain.Review{ID: 1, RoomID: 10, ReserveID: 1, Rating: 4, Body: "ок", PubDate: time.Now()}
		reviews.reviews[2] = &domain.Review{ID: 2, RoomID: 10, ReserveID: 2, Rating: 2, Body: "шумно", PubDate: time.Now()}

		resp, err := svc.ListByRoom(context.Background(), 101)
		require.NoError(t, err)
		assert.Len(t, resp.Reviews, 2)
		assert.Equal(t, 3.0, resp.AverageRating)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, _ := newFixture()

		_, err := svc.ListByRoom(context.Background(), 999)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}
