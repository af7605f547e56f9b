package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// uniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const uniqueViolation = "23505"

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
// На один резерв допускается один отзыв (unique по reserve_id)
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"room_id",
			"author_id",
			"reserve_id",
			"rating",
			"body",
		).
		Values(
			review.RoomID,
			review.AuthorID,
			review.ReserveID,
			review.Rating,
			review.Body,
		).
		Suffix("RETURNING id, pub_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&review.PubDate,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ListByRoom получает отзывы по комнате (новые первыми)
func (r *Repository) ListByRoom(ctx context.Context, roomID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"author_id",
		"reserve_id",
		"rating",
		"body",
		"pub_date",
	).
		From("reviews").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("pub_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.RoomID,
			&review.AuthorID,
			&review.ReserveID,
			&review.Rating,
			&review.Body,
			&review.PubDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRoom - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRoom - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AverageRating вычисляет средний рейтинг комнаты агрегатом по отзывам
// Рейтинг всегда выводится из строк отзывов, кэшированной колонки на комнате нет
// Второе возвращаемое значение false, если отзывов еще нет
func (r *Repository) AverageRating(ctx context.Context, roomID int64) (float64, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("AVG(rating)").
		From("reviews").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()

	if err != nil {
		return 0, false, fmt.Errorf("%w: AverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg sql.NullFloat64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("%w: AverageRating - scan: %v", ErrScanRow, err)
	}

	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}
