package create_reserve

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// Стабы зависимостей

type fakeReserveRepo struct {
	mu       sync.Mutex
	nextID   int64
	reserves []*domain.Reserve
	err      error
}

func (f *fakeReserveRepo) Create(_ context.Context, reserve *domain.Reserve) (*domain.Reserve, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	f.nextID++
	created := *reserve
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.reserves = append(f.reserves, &created)
	return &created, nil
}

func (f *fakeReserveRepo) RangesForRoom(_ context.Context, roomID int64) ([]domain.DateRange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	var ranges []domain.DateRange
	for _, r := range f.reserves {
		if r.RoomID == roomID {
			ranges = append(ranges, r.Range())
		}
	}
	return ranges, nil
}

func (f *fakeReserveRepo) RangesForUser(_ context.Context, userID int64) ([]domain.DateRange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	var ranges []domain.DateRange
	for _, r := range f.reserves {
		if r.ClientID == userID {
			ranges = append(ranges, r.Range())
		}
	}
	return ranges, nil
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

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeMailer) Send(_ context.Context, recipient, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, recipient)
	return nil
}

// fakeTxManager выполняет транзакции по очереди, имитируя serializable
// изоляцию настоящей БД
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func newTestUseCase(reserves *fakeReserveRepo, rooms *fakeRoomRepo, mail *fakeMailer, now time.Time) *UseCase {
	uc := NewUseCase(reserves, rooms, mail, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func standardRoom() *domain.Room {
	return &domain.Room{
		ID:           1,
		HotelID:      1,
		Number:       101,
		TypeCode:     "standard",
		NightlyPrice: 700,
		Capacity:     2,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:     42,
		UserEmail:  "guest@example.com",
		UserName:   "Иван",
		RoomNumber: 101,
		CheckIn:    date(2022, 9, 17),
		CheckOut:   date(2022, 9, 27),
		GuestCount: 2,
	}
}

func TestExecute_Success(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	mail := &fakeMailer{}
	uc := newTestUseCase(reserves, rooms, mail, date(2022, 9, 10))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 101, resp.RoomNumber)
	assert.Equal(t, 10, resp.Nights)
	assert.Equal(t, int64(7000), resp.FullPrice)
	assert.Equal(t, []string{"guest@example.com"}, mail.sent)
}

func TestExecute_RoomNotFound(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{}}
	uc := newTestUseCase(reserves, rooms, &fakeMailer{}, date(2022, 9, 10))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	uc := newTestUseCase(reserves, rooms, &fakeMailer{}, date(2022, 9, 10))

	req := validRequest()
	req.GuestCount = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_RangeValidation(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}

	t.Run("check-in today rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeReserveRepo{}, rooms, &fakeMailer{}, date(2022, 9, 17))
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("check-in in the past rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeReserveRepo{}, rooms, &fakeMailer{}, date(2022, 10, 1))
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeReserveRepo{}, rooms, &fakeMailer{}, date(2022, 9, 10))
		req := validRequest()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestExecute_RoomUnavailable(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	uc := newTestUseCase(reserves, rooms, &fakeMailer{}, date(2022, 9, 10))

	// Комната занята другим клиентом на пересекающиеся даты
	_, err := reserves.Create(context.Background(), &domain.Reserve{
		RoomID:   1,
		ClientID: 7,
		CheckIn:  date(2022, 9, 20),
		CheckOut: date(2022, 9, 25),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_UserConflict(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	uc := newTestUseCase(reserves, rooms, &fakeMailer{}, date(2022, 9, 10))

	// У клиента уже есть бронь в другой комнате на те же даты
	_, err := reserves.Create(context.Background(), &domain.Reserve{
		RoomID:   2,
		ClientID: 42,
		CheckIn:  date(2022, 9, 20),
		CheckOut: date(2022, 9, 25),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserConflict)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	mail := &fakeMailer{err: errors.New("smtp down")}
	uc := newTestUseCase(reserves, rooms, mail, date(2022, 9, 10))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_NoMailWithoutEmail(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	mail := &fakeMailer{}
	uc := newTestUseCase(reserves, rooms, mail, date(2022, 9, 10))

	req := validRequest()
	req.UserEmail = ""

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, mail.sent)
}

// Две конкурентные брони одной комнаты на пересекающиеся даты: пройти должна
// ровно одна
func TestExecute_ConcurrentBookingSameRoom(t *testing.T) {
	reserves := &fakeReserveRepo{}
	rooms := &fakeRoomRepo{rooms: map[int]*domain.Room{101: standardRoom()}}
	uc := newTestUseCase(reserves, rooms, &fakeMailer{}, date(2022, 9, 10))

	first := validRequest()
	second := validRequest()
	second.UserID = 43

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.Execute(context.Background(), first)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.Execute(context.Background(), second)
	}()
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, reserves.reserves, 1)
}
