package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/pkg/dbmetrics"
	"github.com/thalibook/thalibook-api/pkg/psqlbuilder"
)

// uniqueViolation код ошибки Postgres для нарушения уникального ограничения
const uniqueViolation = "23505"

var restaurantColumns = []string{
	"restaurant_id",
	"manager_id",
	"name",
	"address",
	"city",
	"state",
	"zip_code",
	"phone",
	"description",
	"cuisine",
	"cost_rating",
	"hours",
	"tables",
	"latitude",
	"longitude",
	"photo_url",
	"avg_rating",
	"total_reviews",
	"is_approved",
	"created_at",
}

// ApprovedFilter фильтр для выборки одобренных ресторанов.
// City и диапазон zip взаимоисключающие: заполняется одно из двух (или ничего).
type ApprovedFilter struct {
	City    *string
	ZipFrom *int
	ZipTo   *int
}

// Repository репозиторий для работы с ресторанами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресторан (в неодобренном состоянии)
func (r *Repository) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursJSON, tablesJSON, err := encodeJSONColumns(restaurant)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("restaurants").
		Columns(
			"manager_id",
			"name",
			"address",
			"city",
			"state",
			"zip_code",
			"phone",
			"description",
			"cuisine",
			"cost_rating",
			"hours",
			"tables",
			"latitude",
			"longitude",
			"photo_url",
			"is_approved",
		).
		Values(
			restaurant.ManagerID,
			restaurant.Name,
			restaurant.Address,
			restaurant.City,
			restaurant.State,
			restaurant.ZipCode,
			restaurant.Phone,
			restaurant.Description,
			restaurant.Cuisine,
			restaurant.CostRating,
			hoursJSON,
			tablesJSON,
			restaurant.Latitude,
			restaurant.Longitude,
			restaurant.PhotoURL,
			restaurant.IsApproved,
		).
		Suffix("RETURNING restaurant_id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&createdAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	restaurant.CreatedAt = createdAt.Time

	return restaurant, nil
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"restaurant_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// Update обновляет описательные атрибуты ресторана.
// Статус одобрения и менеджер этим методом не меняются.
func (r *Repository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursJSON, tablesJSON, err := encodeJSONColumns(restaurant)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("restaurants").
		Set("name", restaurant.Name).
		Set("address", restaurant.Address).
		Set("city", restaurant.City).
		Set("state", restaurant.State).
		Set("zip_code", restaurant.ZipCode).
		Set("phone", restaurant.Phone).
		Set("description", restaurant.Description).
		Set("cuisine", restaurant.Cuisine).
		Set("cost_rating", restaurant.CostRating).
		Set("hours", hoursJSON).
		Set("tables", tablesJSON).
		Set("latitude", restaurant.Latitude).
		Set("longitude", restaurant.Longitude).
		Set("photo_url", restaurant.PhotoURL).
		Where(squirrel.Eq{"restaurant_id": restaurant.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// SetApproved помечает ресторан одобренным
func (r *Repository) SetApproved(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurants").
		Set("is_approved", true).
		Where(squirrel.Eq{"restaurant_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetApproved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetApproved - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetApproved - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// SetRating обновляет денормализованный рейтинг ресторана
func (r *Repository) SetRating(ctx context.Context, id int64, avgRating float64, totalReviews int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurants").
		Set("avg_rating", avgRating).
		Set("total_reviews", totalReviews).
		Where(squirrel.Eq{"restaurant_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetRating - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetRating - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// Delete удаляет ресторан. Связанные бронирования и отзывы удаляются каскадно (FK).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("restaurants").
		Where(squirrel.Eq{"restaurant_id": id}).
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
		return ErrRestaurantNotFound
	}

	return nil
}

// ListApproved получает одобренные рестораны с фильтром по городу или диапазону zip.
// Сортировка по имени для детерминированного порядка выдачи.
func (r *Repository) ListApproved(ctx context.Context, filter ApprovedFilter) ([]*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"is_approved": true})

	if filter.City != nil {
		selectBuilder = selectBuilder.Where("LOWER(city) = ?", strings.ToLower(*filter.City))
	}
	if filter.ZipFrom != nil && filter.ZipTo != nil {
		// zip_code хранится строкой, для диапазона приводим к числу
		selectBuilder = selectBuilder.
			Where("zip_code ~ '^[0-9]+$'").
			Where("CAST(zip_code AS INTEGER) BETWEEN ? AND ?", *filter.ZipFrom, *filter.ZipTo)
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListApproved - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListApproved - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRestaurants(rows)
}

// ListByManager получает рестораны менеджера
func (r *Repository) ListByManager(ctx context.Context, managerID int64) ([]*domain.Restaurant, error) {
	return r.list(ctx, squirrel.Eq{"manager_id": managerID}, "ListByManager")
}

// ListPending получает рестораны, ожидающие одобрения
func (r *Repository) ListPending(ctx context.Context) ([]*domain.Restaurant, error) {
	return r.list(ctx, squirrel.Eq{"is_approved": false}, "ListPending")
}

// ListAll получает все рестораны (для администратора)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Restaurant, error) {
	return r.list(ctx, nil, "ListAll")
}

// Count возвращает общее количество ресторанов
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil, "Count")
}

// CountByApproved возвращает количество ресторанов по статусу одобрения
func (r *Repository) CountByApproved(ctx context.Context, approved bool) (int64, error) {
	return r.count(ctx, squirrel.Eq{"is_approved": approved}, "CountByApproved")
}

func (r *Repository) list(ctx context.Context, where interface{}, method string) ([]*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(restaurantColumns...).From("restaurants")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.OrderBy("created_at DESC, restaurant_id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	return r.scanRestaurants(rows)
}

func (r *Repository) count(ctx context.Context, where interface{}, method string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("restaurants")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, method, err)
	}

	return count, nil
}

func (r *Repository) scanOne(row *sql.Row, method string) (*domain.Restaurant, error) {
	var (
		restaurant domain.Restaurant
		hoursJSON  []byte
		tablesJSON []byte
		createdAt  sql.NullTime
	)

	err := row.Scan(
		&restaurant.ID,
		&restaurant.ManagerID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.City,
		&restaurant.State,
		&restaurant.ZipCode,
		&restaurant.Phone,
		&restaurant.Description,
		&restaurant.Cuisine,
		&restaurant.CostRating,
		&hoursJSON,
		&tablesJSON,
		&restaurant.Latitude,
		&restaurant.Longitude,
		&restaurant.PhotoURL,
		&restaurant.AvgRating,
		&restaurant.TotalReviews,
		&restaurant.IsApproved,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan restaurant: %v", ErrScanRow, method, err)
	}

	if err := decodeJSONColumns(&restaurant, hoursJSON, tablesJSON); err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrScanRow, method, err)
	}
	restaurant.CreatedAt = createdAt.Time

	return &restaurant, nil
}

// scanRestaurants сканирует результаты запроса в слайс ресторанов
func (r *Repository) scanRestaurants(rows *sql.Rows) ([]*domain.Restaurant, error) {
	restaurants := make([]*domain.Restaurant, 0)

	for rows.Next() {
		var (
			restaurant domain.Restaurant
			hoursJSON  []byte
			tablesJSON []byte
			createdAt  sql.NullTime
		)

		err := rows.Scan(
			&restaurant.ID,
			&restaurant.ManagerID,
			&restaurant.Name,
			&restaurant.Address,
			&restaurant.City,
			&restaurant.State,
			&restaurant.ZipCode,
			&restaurant.Phone,
			&restaurant.Description,
			&restaurant.Cuisine,
			&restaurant.CostRating,
			&hoursJSON,
			&tablesJSON,
			&restaurant.Latitude,
			&restaurant.Longitude,
			&restaurant.PhotoURL,
			&restaurant.AvgRating,
			&restaurant.TotalReviews,
			&restaurant.IsApproved,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRestaurants - scan row: %v", ErrScanRow, err)
		}

		if err := decodeJSONColumns(&restaurant, hoursJSON, tablesJSON); err != nil {
			return nil, fmt.Errorf("%w: scanRestaurants - %v", ErrScanRow, err)
		}
		restaurant.CreatedAt = createdAt.Time

		restaurants = append(restaurants, &restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRestaurants - rows error: %v", ErrScanRow, err)
	}

	return restaurants, nil
}

func encodeJSONColumns(restaurant *domain.Restaurant) (hoursJSON, tablesJSON []byte, err error) {
	hoursJSON, err = json.Marshal(restaurant.Hours)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hours: %v", ErrEncodeJSON, err)
	}

	tablesJSON, err = json.Marshal(restaurant.Tables)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: tables: %v", ErrEncodeJSON, err)
	}

	return hoursJSON, tablesJSON, nil
}

func decodeJSONColumns(restaurant *domain.Restaurant, hoursJSON, tablesJSON []byte) error {
	if len(hoursJSON) > 0 {
		if err := json.Unmarshal(hoursJSON, &restaurant.Hours); err != nil {
			return fmt.Errorf("decode hours: %v", err)
		}
	}
	if len(tablesJSON) > 0 {
		if err := json.Unmarshal(tablesJSON, &restaurant.Tables); err != nil {
			return fmt.Errorf("decode tables: %v", err)
		}
	}
	return nil
}
