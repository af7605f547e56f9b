package cancel_reserve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
)

// Стабы зависимостей

type fakeReserveRepo struct {
	reserves map[int64]*domain.Reserve
	deleted  []int64
}

func (f *fakeReserveRepo) GetByID(_ context.Context, id int64) (*domain.Reserve, error) {
	reserve, ok := f.reserves[id]
	if !ok {
		return nil, reserveRepo.ErrReserveNotFound
	}
	return reserve, nil
}

func (f *fakeReserveRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reserves[id]; !ok {
		return reserveRepo.ErrReserveNotFound
	}
	delete(f.reserves, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	return f.rooms[id], nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(_ context.Context, recipient, _, _ string) error {
	f.sent = append(f.sent, recipient)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newFixture(now time.Time) (*UseCase, *fakeReserveRepo, *fakeMailer) {
	reserves := &fakeReserveRepo{
		reserves: map[int64]*domain.Reserve{
			1: {
				ID:       1,
				RoomID:   10,
				ClientID: 42,
				CheckIn:  date(2022, 9, 17),
				CheckOut: date(2022, 9, 27),
			},
		},
	}
	rooms := &fakeRoomRepo{
		rooms: map[int64]*domain.Room{
			10: {ID: 10, Number: 101, NightlyPrice: 700, Capacity: 2},
		},
	}
	mail := &fakeMailer{}

	uc := NewUseCase(reserves, rooms, mail, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, reserves, mail
}

func TestQuote(t *testing.T) {
	t.Run("before arrival refunds every night", func(t *testing.T) {
		uc, _, _ := newFixture(date(2022, 9, 10))

		quote, err := uc.Quote(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, 10, quote.RefundableNights)
		assert.False(t, quote.Delayed)
		assert.Equal(t, int64(7000), quote.Amount)
	})

	t.Run("mid-stay refunds remaining nights", func(t *testing.T) {
		uc, _, _ := newFixture(date(2022, 9, 20))

		quote, err := uc.Quote(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, 7, quote.RefundableNights)
		assert.Equal(t, int64(4900), quote.Amount)
	})

	t.Run("after stay is delayed", func(t *testing.T) {
		uc, _, _ := newFixture(date(2022, 10, 1))

		quote, err := uc.Quote(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.True(t, quote.Delayed)
		assert.Equal(t, int64(0), quote.Amount)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newFixture(date(2022, 9, 10))

		_, err := uc.Quote(context.Background(), 99, 42)
		assert.ErrorIs(t, err, ErrReserveNotFound)
	})

	t.Run("foreign reserve forbidden", func(t *testing.T) {
		uc, _, _ := newFixture(date(2022, 9, 10))

		_, err := uc.Quote(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestExecute(t *testing.T) {
	t.Run("deletes reserve and sends mail", func(t *testing.T) {
		uc, reserves, mail := newFixture(date(2022, 9, 10))

		err := uc.Execute(context.Background(), 1, 42, "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, reserves.deleted)
		assert.Equal(t, []string{"guest@example.com"}, mail.sent)
	})

	t.Run("no mail for elapsed stay", func(t *testing.T) {
		uc, reserves, mail := newFixture(date(2022, 10, 1))

		err := uc.Execute(context.Background(), 1, 42, "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, reserves.deleted)
		assert.Empty(t, mail.sent)
	})

	t.Run("no mail without email", func(t *testing.T) {
		uc, _, mail := newFixture(date(2022, 9, 10))

		err := uc.Execute(context.Background(), 1, 42, "")
		require.NoError(t, err)
		assert.Empty(t, mail.sent)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newFixture(date(2022, 9, 10))

		err := uc.Execute(context.Background(), 99, 42, "guest@example.com")
		assert.ErrorIs(t, err, ErrReserveNotFound)
	})

	t.Run("foreign reserve forbidden", func(t *testing.T) {
		uc, reserves, _ := newFixture(date(2022, 9, 10))

		err := uc.Execute(context.Background(), 1, 7, "guest@example.com")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, reserves.deleted)
	})
}
