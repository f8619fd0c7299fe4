package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/pkg/dbmetrics"
	"github.com/thalibook/thalibook-api/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var reviewColumns = []string{
	"review_id",
	"restaurant_id",
	"user_id",
	"rating",
	"comment",
	"created_at",
}

// RatingSummary агрегат по отзывам ресторана
type RatingSummary struct {
	Average float64
	Total   int64
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв.
// Уникальный индекс (restaurant_id, user_id) гарантирует один отзыв
// на ресторан от пользователя.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("restaurant_id", "user_id", "rating", "comment").
		Values(review.RestaurantID, review.UserID, review.Rating, review.Comment).
		Suffix("RETURNING review_id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// ExistsByUserAndRestaurant проверяет, оставлял ли пользователь отзыв на ресторан
func (r *Repository) ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByUserAndRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsByUserAndRestaurant - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListByRestaurant получает отзывы ресторана, новые сначала
func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at DESC, review_id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt sql.NullTime

		err := rows.Scan(
			&review.ID,
			&review.RestaurantID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRestaurant - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time

		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// SummaryForRestaurant возвращает средний рейтинг и количество отзывов ресторана.
// Для ресторана без отзывов возвращает нулевой агрегат.
func (r *Repository) SummaryForRestaurant(ctx context.Context, restaurantID int64) (RatingSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return RatingSummary{}, fmt.Errorf("%w: SummaryForRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	var summary RatingSummary
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&summary.Average, &summary.Total); err != nil {
		return RatingSummary{}, fmt.Errorf("%w: SummaryForRestaurant - scan summary: %v", ErrScanRow, err)
	}

	return summary, nil
}

// Count возвращает общее количество отзывов
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reviews").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
