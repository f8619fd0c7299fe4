package get_table_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
)

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(rRepo *fakeRestaurantRepo, bRepo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(rRepo, bRepo, 60, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:     1,
		Name:   "Saffron House",
		Hours:  map[string]string{"Mon": "10:00-22:00", "Sun": "10:00-22:00", "Sat": "10:00-22:00", "Tue": "10:00-22:00", "Wed": "10:00-22:00", "Thu": "10:00-22:00", "Fri": "10:00-22:00"},
		Tables: domain.TableInventory{2: 2, 4: 1},
	}
}

func TestExecute_MarksOccupiedTables(t *testing.T) {
	bookings := []*domain.Booking{
		{TableID: 1, Time: "19:00", Status: domain.StatusConfirmed},
		{TableID: 3, Time: "18:30", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(
		&fakeRestaurantRepo{restaurant: testRestaurant()},
		&fakeBookingRepo{bookings: bookings},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "19:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Tables, 3)
	assert.False(t, resp.Tables[0].Available) // стол 1 занят
	assert.True(t, resp.Tables[1].Available)
	assert.False(t, resp.Tables[2].Available) // стол 3 занят в окне
}

func TestExecute_CancelledBookingDoesNotOccupy(t *testing.T) {
	bookings := []*domain.Booking{
		{TableID: 1, Time: "19:00", Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(
		&fakeRestaurantRepo{restaurant: testRestaurant()},
		&fakeBookingRepo{bookings: bookings},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "19:00",
	})

	require.NoError(t, err)
	for _, table := range resp.Tables {
		assert.True(t, table.Available)
	}
}

func TestExecute_OrphanedTableReferenceIgnored(t *testing.T) {
	// бронирование ссылается на стол, которого больше нет в инвентаре
	bookings := []*domain.Booking{
		{TableID: 99, Time: "19:00", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(
		&fakeRestaurantRepo{restaurant: testRestaurant()},
		&fakeBookingRepo{bookings: bookings},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "19:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Tables, 3)
	for _, table := range resp.Tables {
		assert.True(t, table.Available)
	}
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound},
		&fakeBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 42,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "19:00",
	})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_BookingRepoErrorIsNotEmptyResult(t *testing.T) {
	// ошибка чтения бронирований не должна выглядеть как "все столы свободны"
	uc := newTestUseCase(
		&fakeRestaurantRepo{restaurant: testRestaurant()},
		&fakeBookingRepo{err: errors.New("connection reset")},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "19:00",
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(
		&fakeRestaurantRepo{restaurant: testRestaurant()},
		&fakeBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testNow.AddDate(0, 0, -1),
		Time:         "19:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRestaurantRepo{}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 0,
		Date:         testNow,
		Time:         "19:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
