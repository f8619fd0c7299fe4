package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	bookingRepo "github.com/thalibook/thalibook-api/internal/infra/storage/booking"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
)

type fakeRestaurantRepo struct {
	byID         map[int64]*domain.Restaurant
	approved     []int64
	countTotal   int64
	countPending int64
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return r, nil
}

func (f *fakeRestaurantRepo) SetApproved(_ context.Context, id int64) error {
	r, ok := f.byID[id]
	if !ok {
		return restaurantRepo.ErrRestaurantNotFound
	}
	r.IsApproved = true
	f.approved = append(f.approved, id)
	return nil
}

func (f *fakeRestaurantRepo) Count(_ context.Context) (int64, error) {
	return f.countTotal, nil
}

func (f *fakeRestaurantRepo) CountByApproved(_ context.Context, _ bool) (int64, error) {
	return f.countPending, nil
}

type fakeBookingRepo struct {
	total    int64
	byStatus map[domain.BookingStatus]int64
	top      []bookingRepo.TopRestaurant
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	return f.byStatus[status], nil
}

func (f *fakeBookingRepo) TopRestaurants(_ context.Context, _ uint64) ([]bookingRepo.TopRestaurant, error) {
	return f.top, nil
}

type fakeUserRepo struct{ count int64 }

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) { return f.count, nil }

type fakeReviewRepo struct{ count int64 }

func (f *fakeReviewRepo) Count(_ context.Context) (int64, error) { return f.count, nil }

type fakeNotifier struct {
	notified []int64
	messages []string
}

func (f *fakeNotifier) Notify(_ context.Context, userID int64, message string) error {
	f.notified = append(f.notified, userID)
	f.messages = append(f.messages, message)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestApproveRestaurant_NotifiesManager(t *testing.T) {
	rRepo := &fakeRestaurantRepo{
		byID: map[int64]*domain.Restaurant{
			7: {ID: 7, ManagerID: 3, Name: "Saffron House"},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewService(rRepo, &fakeBookingRepo{}, &fakeUserRepo{}, &fakeReviewRepo{}, notifier, nopLogger{})

	err := svc.ApproveRestaurant(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, rRepo.approved)
	assert.True(t, rRepo.byID[7].IsApproved)
	require.Equal(t, []int64{3}, notifier.notified)
	assert.Contains(t, notifier.messages[0], "Saffron House")
}

func TestApproveRestaurant_AlreadyApproved(t *testing.T) {
	rRepo := &fakeRestaurantRepo{
		byID: map[int64]*domain.Restaurant{
			7: {ID: 7, ManagerID: 3, IsApproved: true},
		},
	}
	svc := NewService(rRepo, &fakeBookingRepo{}, &fakeUserRepo{}, &fakeReviewRepo{}, &fakeNotifier{}, nopLogger{})

	err := svc.ApproveRestaurant(context.Background(), 7)

	assert.ErrorIs(t, err, ErrAlreadyApproved)
	assert.Empty(t, rRepo.approved)
}

func TestApproveRestaurant_NotFound(t *testing.T) {
	svc := NewService(&fakeRestaurantRepo{byID: map[int64]*domain.Restaurant{}}, &fakeBookingRepo{}, &fakeUserRepo{}, &fakeReviewRepo{}, &fakeNotifier{}, nopLogger{})

	err := svc.ApproveRestaurant(context.Background(), 404)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestStats_AggregatesCounters(t *testing.T) {
	rRepo := &fakeRestaurantRepo{countTotal: 12, countPending: 3}
	bRepo := &fakeBookingRepo{total: 150}
	svc := NewService(rRepo, bRepo, &fakeUserRepo{count: 40}, &fakeReviewRepo{count: 25}, &fakeNotifier{}, nopLogger{})

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalUsers)
	assert.Equal(t, int64(12), stats.TotalRestaurants)
	assert.Equal(t, int64(3), stats.PendingRestaurants)
	assert.Equal(t, int64(9), stats.ApprovedRestaurants)
	assert.Equal(t, int64(150), stats.TotalBookings)
	assert.Equal(t, int64(25), stats.TotalReviews)
}

func TestAnalytics_BreaksDownByStatus(t *testing.T) {
	bRepo := &fakeBookingRepo{
		total: 10,
		byStatus: map[domain.BookingStatus]int64{
			domain.StatusPending:   2,
			domain.StatusConfirmed: 5,
			domain.StatusCancelled: 3,
		},
	}
	svc := NewService(&fakeRestaurantRepo{}, bRepo, &fakeUserRepo{}, &fakeReviewRepo{}, &fakeNotifier{}, nopLogger{})

	analytics, err := svc.Analytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), analytics.TotalBookings)
	assert.Equal(t, int64(2), analytics.PendingBookings)
	assert.Equal(t, int64(5), analytics.ConfirmedBookings)
	assert.Equal(t, int64(3), analytics.CancelledBookings)
}

func TestTopRestaurants_EnrichesNames(t *testing.T) {
	rRepo := &fakeRestaurantRepo{
		byID: map[int64]*domain.Restaurant{
			7: {ID: 7, Name: "Saffron House", City: "San Jose"},
		},
	}
	bRepo := &fakeBookingRepo{
		top: []bookingRepo.TopRestaurant{
			{RestaurantID: 7, Bookings: 20},
			{RestaurantID: 99, Bookings: 5},
		},
	}
	svc := NewService(rRepo, bRepo, &fakeUserRepo{}, &fakeReviewRepo{}, &fakeNotifier{}, nopLogger{})

	resp, err := svc.TopRestaurants(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Restaurants, 2)
	assert.Equal(t, "Saffron House", resp.Restaurants[0].Name)
	assert.Equal(t, "San Jose", resp.Restaurants[0].City)
	assert.Equal(t, int64(20), resp.Restaurants[0].Bookings)

	// Удаленный ресторан остается в рейтинге без названия
	assert.Equal(t, int64(99), resp.Restaurants[1].RestaurantID)
	assert.Empty(t, resp.Restaurants[1].Name)
}
