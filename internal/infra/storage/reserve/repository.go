package reserve

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Имена exclusion constraint'ов из migrations/001_init.sql
// По ним нарушение 23P01 маппится в доменную ошибку
const (
	roomDatesConstraint   = "reserves_room_dates_excl"
	clientDatesConstraint = "reserves_client_dates_excl"
)

// exclusionViolation код ошибки PostgreSQL при нарушении exclusion constraint
const exclusionViolation = "23P01"

// Repository репозиторий для работы с резервами комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резервов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый резерв
// Ожидается вызов внутри сериализуемой транзакции usecase'а создания брони;
// exclusion constraint'ы БД остаются последней линией защиты от двойного
// бронирования и маппятся в ErrDatesUnavailable / ErrClientDatesConflict
func (r *Repository) Create(ctx context.Context, reserve *domain.Reserve) (*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reserves").
		Columns(
			"room_id",
			"client_id",
			"day_in",
			"day_out",
			"number_of_guests",
		).
		Values(
			reserve.RoomID,
			reserve.ClientID,
			reserve.CheckIn,
			reserve.CheckOut,
			reserve.GuestCount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reserve.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == exclusionViolation {
			switch pqErr.Constraint {
			case roomDatesConstraint:
				return nil, ErrDatesUnavailable
			case clientDatesConstraint:
				return nil, ErrClientDatesConflict
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reserve.CreatedAt = createdAt.Time
	reserve.UpdatedAt = updatedAt.Time

	return reserve, nil
}

// GetByID получает резерв по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"client_id",
		"day_in",
		"day_out",
		"number_of_guests",
		"created_at",
		"updated_at",
	).
		From("reserves").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reserve domain.Reserve
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reserve.ID,
		&reserve.RoomID,
		&reserve.ClientID,
		&reserve.CheckIn,
		&reserve.CheckOut,
		&reserve.GuestCount,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReserveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reserve: %v", ErrScanRow, err)
	}

	reserve.CreatedAt = createdAt.Time
	reserve.UpdatedAt = updatedAt.Time

	return &reserve, nil
}

// GetByUserID получает список резервов пользователя (новые первыми)
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"client_id",
		"day_in",
		"day_out",
		"number_of_guests",
		"created_at",
		"updated_at",
	).
		From("reserves").
		Where(squirrel.Eq{"client_id": userID}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReserves(rows)
}

// RangesForRoom получает занятые диапазоны дат для комнаты
// Внутри транзакции строки блокируются FOR UPDATE - это опора проверки
// доступности в usecase создания брони
func (r *Repository) RangesForRoom(ctx context.Context, roomID int64) ([]domain.DateRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("day_in", "day_out").
		From("reserves").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("day_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RangesForRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RangesForRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows, "RangesForRoom")
}

// RangesForUser получает занятые диапазоны дат пользователя по всем комнатам
func (r *Repository) RangesForUser(ctx context.Context, userID int64) ([]domain.DateRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("day_in", "day_out").
		From("reserves").
		Where(squirrel.Eq{"client_id": userID}).
		OrderBy("day_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RangesForUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RangesForUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows, "RangesForUser")
}

// Delete удаляет резерв (физическое удаление - отмена брони в этой системе
// безусловно удаляет строку; отзывы живут отдельно и не затрагиваются)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reserves").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReserveNotFound
	}

	return nil
}

// PurgeCheckedOutBefore удаляет резервы, выезд по которым случился не позже
// cutoff. Возвращает число удаленных строк; повторный вызов вернет 0
func (r *Repository) PurgeCheckedOutBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reserves").
		Where(squirrel.LtOrEq{"day_out": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: PurgeCheckedOutBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeCheckedOutBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeCheckedOutBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// scanReserves сканирует результаты запроса в слайс резервов
func (r *Repository) scanReserves(rows *sql.Rows) ([]*domain.Reserve, error) {
	reserves := make([]*domain.Reserve, 0)

	for rows.Next() {
		var reserve domain.Reserve
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reserve.ID,
			&reserve.RoomID,
			&reserve.ClientID,
			&reserve.CheckIn,
			&reserve.CheckOut,
			&reserve.GuestCount,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReserves - scan row: %v", ErrScanRow, err)
		}

		reserve.CreatedAt = createdAt.Time
		reserve.UpdatedAt = updatedAt.Time

		reserves = append(reserves, &reserve)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReserves - rows error: %v", ErrScanRow, err)
	}

	return reserves, nil
}

// scanRanges сканирует результаты запроса в слайс диапазонов дат
func (r *Repository) scanRanges(rows *sql.Rows, op string) ([]domain.DateRange, error) {
	ranges := make([]domain.DateRange, 0)

	for rows.Next() {
		var dayIn, dayOut time.Time
		if err := rows.Scan(&dayIn, &dayOut); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		ranges = append(ranges, domain.DateRange{
			CheckIn:  domain.DateOnly(dayIn),
			CheckOut: domain.DateOnly(dayOut),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return ranges, nil
}
