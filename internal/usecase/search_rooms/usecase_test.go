package search_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Стабы зависимостей

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) ListWithCapacityAtLeast(_ context.Context, guests int) ([]*domain.Room, error) {
	var fit []*domain.Room
	for _, room := range f.rooms {
		if room.Capacity >= guests {
			fit = append(fit, room)
		}
	}
	return fit, nil
}

type fakeReserveRepo struct {
	roomRanges map[int64][]domain.DateRange
	userRanges map[int64][]domain.DateRange
}

func (f *fakeReserveRepo) RangesForRoom(_ context.Context, roomID int64) ([]domain.DateRange, error) {
	return f.roomRanges[roomID], nil
}

func (f *fakeReserveRepo) RangesForUser(_ context.Context, userID int64) ([]domain.DateRange, error) {
	return f.userRanges[userID], nil
}

type fakeReviewRepo struct {
	ratings map[int64]float64
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, roomID int64) (float64, bool, error) {
	rating, ok := f.ratings[roomID]
	return rating, ok, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 1, Number: 101, TypeCode: "standard", NightlyPrice: 700, Capacity: 2},
		{ID: 2, Number: 102, TypeCode: "standard", NightlyPrice: 900, Capacity: 3},
		{ID: 3, Number: 201, TypeCode: "lux", NightlyPrice: 2000, Capacity: 4},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:     42,
		CheckIn:    date(2023, 6, 1),
		CheckOut:   date(2023, 6, 5),
		GuestCount: 2,
	}
}

func TestExecute_FiltersBusyRooms(t *testing.T) {
	reserves := &fakeReserveRepo{
		roomRanges: map[int64][]domain.DateRange{
			// Комната 102 занята на пересекающиеся даты
			2: {{CheckIn: date(2023, 6, 3), CheckOut: date(2023, 6, 10)}},
			// Комната 201 занята впритык - не конфликт
			3: {{CheckIn: date(2023, 6, 5), CheckOut: date(2023, 6, 10)}},
		},
		userRanges: map[int64][]domain.DateRange{},
	}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, reserves, &fakeReviewRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, 101, resp.Rooms[0].RoomNumber)
	assert.Equal(t, 201, resp.Rooms[1].RoomNumber)
}

func TestExecute_FiltersByCapacity(t *testing.T) {
	reserves := &fakeReserveRepo{userRanges: map[int64][]domain.DateRange{}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, reserves, &fakeReviewRepo{}, nopLogger{})

	req := validRequest()
	req.GuestCount = 4

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, 201, resp.Rooms[0].RoomNumber)
}

func TestExecute_PricesAndRatings(t *testing.T) {
	reserves := &fakeReserveRepo{userRanges: map[int64][]domain.DateRange{}}
	reviews := &fakeReviewRepo{ratings: map[int64]float64{1: 4.2}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, reserves, reviews, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 3)

	first := resp.Rooms[0]
	assert.Equal(t, 4, first.Nights)
	assert.Equal(t, int64(2800), first.FullPrice)
	assert.Equal(t, 4.2, first.AverageRating)

	// Комната без отзывов получает рейтинг по умолчанию
	assert.Equal(t, domain.DefaultRating, resp.Rooms[1].AverageRating)
}

func TestExecute_UserConflict(t *testing.T) {
	reserves := &fakeReserveRepo{
		userRanges: map[int64][]domain.DateRange{
			42: {{CheckIn: date(2023, 6, 2), CheckOut: date(2023, 6, 4)}},
		},
	}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, reserves, &fakeReviewRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserConflict)
}

func TestExecute_Validation(t *testing.T) {
	reserves := &fakeReserveRepo{userRanges: map[int64][]domain.DateRange{}}
	uc := NewUseCase(&fakeRoomRepo{rooms: testRooms()}, reserves, &fakeReviewRepo{}, nopLogger{})

	t.Run("zero guests", func(t *testing.T) {
		req := validRequest()
		req.GuestCount = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})

	t.Run("inverted range", func(t *testing.T) {
		req := validRequest()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
