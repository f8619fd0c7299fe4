package reviews

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	reviewRepo "github.com/thalibook/thalibook-api/internal/infra/storage/review"
	"github.com/thalibook/thalibook-api/internal/service/reviews/models"
)

type fakeReviewRepo struct {
	reviews   []*domain.Review
	createErr error
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *review
	created.ID = int64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, &created)
	review.ID = created.ID
	return &created, nil
}

func (f *fakeReviewRepo) ExistsByUserAndRestaurant(_ context.Context, userID, restaurantID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.RestaurantID == restaurantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) ListByRestaurant(_ context.Context, restaurantID int64) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, r := range f.reviews {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) SummaryForRestaurant(_ context.Context, restaurantID int64) (reviewRepo.RatingSummary, error) {
	var sum, total int64
	for _, r := range f.reviews {
		if r.RestaurantID == restaurantID {
			sum += int64(r.Rating)
			total++
		}
	}
	if total == 0 {
		return reviewRepo.RatingSummary{}, nil
	}
	return reviewRepo.RatingSummary{Average: float64(sum) / float64(total), Total: total}, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	rating     *struct {
		avg   float64
		total int
	}
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	if f.restaurant == nil {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRestaurantRepo) SetRating(_ context.Context, _ int64, avgRating float64, totalReviews int) error {
	f.rating = &struct {
		avg   float64
		total int
	}{avgRating, totalReviews}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(rvRepo *fakeReviewRepo, rRepo *fakeRestaurantRepo) *Service {
	return NewService(rvRepo, rRepo, fakeTxManager{}, nopLogger{})
}

func TestCreate_UpdatesDenormalizedRating(t *testing.T) {
	rvRepo := &fakeReviewRepo{
		reviews: []*domain.Review{{RestaurantID: 7, UserID: 2, Rating: 5}},
	}
	rRepo := &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 7, Name: "Saffron House"}}
	svc := newTestService(rvRepo, rRepo)

	resp, err := svc.Create(context.Background(), 7, 5, &models.CreateReviewRequest{Rating: 4, Comment: "  good food  "})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Rating)
	assert.Equal(t, "good food", resp.Comment)

	require.NotNil(t, rRepo.rating)
	assert.InDelta(t, 4.5, rRepo.rating.avg, 0.001)
	assert.Equal(t, 2, rRepo.rating.total)
}

func TestCreate_DuplicateCaughtByPrecheck(t *testing.T) {
	rvRepo := &fakeReviewRepo{
		reviews: []*domain.Review{{RestaurantID: 7, UserID: 5, Rating: 3}},
	}
	rRepo := &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 7}}
	svc := newTestService(rvRepo, rRepo)

	_, err := svc.Create(context.Background(), 7, 5, &models.CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	// Транзакция не открывалась: отзыв не создан, рейтинг не пересчитан
	assert.Len(t, rvRepo.reviews, 1)
	assert.Nil(t, rRepo.rating)
}

func TestCreate_DuplicateCaughtByUniqueIndex(t *testing.T) {
	// Предварительная проверка прошла, но конкурентная вставка успела раньше -
	// уникальный индекс остаётся последней линией защиты
	rvRepo := &fakeReviewRepo{createErr: reviewRepo.ErrAlreadyReviewed}
	rRepo := &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 7}}
	svc := newTestService(rvRepo, rRepo)

	_, err := svc.Create(context.Background(), 7, 5, &models.CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Nil(t, rRepo.rating)
}

func TestCreate_RestaurantNotFound(t *testing.T) {
	svc := newTestService(&fakeReviewRepo{}, &fakeRestaurantRepo{})

	_, err := svc.Create(context.Background(), 404, 5, &models.CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	svc := newTestService(&fakeReviewRepo{}, &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 7}})

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), 7, 5, &models.CreateReviewRequest{Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidInput, "rating %d", rating)
	}
}

func TestCreate_CommentTooLong(t *testing.T) {
	svc := newTestService(&fakeReviewRepo{}, &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 7}})

	_, err := svc.Create(context.Background(), 7, 5, &models.CreateReviewRequest{
		Rating:  4,
		Comment: strings.Repeat("x", domain.MaxCommentLength+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByRestaurant_ReturnsAggregate(t *testing.T) {
	rvRepo := &fakeReviewRepo{
		reviews: []*domain.Review{
			{ID: 1, RestaurantID: 7, UserID: 2, Rating: 5, Comment: "great"},
			{ID: 2, RestaurantID: 7, UserID: 3, Rating: 3, Comment: "ok"},
			{ID: 3, RestaurantID: 8, UserID: 2, Rating: 1},
		},
	}
	rRepo := &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 7, AvgRating: 4, TotalReviews: 2}}
	svc := newTestService(rvRepo, rRepo)

	resp, err := svc.ListByRestaurant(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
	assert.Equal(t, 4.0, resp.AvgRating)
	assert.Equal(t, 2, resp.TotalReviews)
}
