package search_restaurants

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	"github.com/thalibook/thalibook-api/pkg/types"
)

type fakeRestaurantRepo struct {
	restaurants []*domain.Restaurant
	lastFilter  restaurantRepo.ApprovedFilter
}

func (f *fakeRestaurantRepo) ListApproved(_ context.Context, filter restaurantRepo.ApprovedFilter) ([]*domain.Restaurant, error) {
	f.lastFilter = filter
	return f.restaurants, nil
}

type fakeBookingRepo struct {
	byRestaurant map[int64][]*domain.Booking
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	return f.byRestaurant[filter.RestaurantID], nil
}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func allWeekHours(interval string) map[string]string {
	hours := map[string]string{}
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		hours[day] = interval
	}
	return hours
}

func newTestUseCase(rRepo *fakeRestaurantRepo, bRepo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(rRepo, bRepo, 60, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:      testNow.AddDate(0, 0, 1),
		Time:      "19:00",
		PartySize: 2,
	}
}

func TestExecute_OrdersByFreeTablesThenName(t *testing.T) {
	restaurants := []*domain.Restaurant{
		{ID: 1, Name: "Bombay Spice", Hours: allWeekHours("10:00-22:00"), Tables: domain.TableInventory{2: 1}},
		{ID: 2, Name: "Agra Palace", Hours: allWeekHours("10:00-22:00"), Tables: domain.TableInventory{2: 1}},
		{ID: 3, Name: "Chennai Kitchen", Hours: allWeekHours("10:00-22:00"), Tables: domain.TableInventory{2: 3}},
	}
	uc := newTestUseCase(&fakeRestaurantRepo{restaurants: restaurants}, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Restaurants, 3)
	assert.Equal(t, "Chennai Kitchen", resp.Restaurants[0].Name) // больше свободных столов
	assert.Equal(t, "Agra Palace", resp.Restaurants[1].Name)     // при равенстве - по имени
	assert.Equal(t, "Bombay Spice", resp.Restaurants[2].Name)
}

func TestExecute_SkipsClosedRestaurants(t *testing.T) {
	restaurants := []*domain.Restaurant{
		{ID: 1, Name: "Lunch Only", Hours: allWeekHours("11:00-15:00"), Tables: domain.TableInventory{2: 2}},
		{ID: 2, Name: "All Day", Hours: allWeekHours("10:00-22:00"), Tables: domain.TableInventory{2: 2}},
	}
	uc := newTestUseCase(&fakeRestaurantRepo{restaurants: restaurants}, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Restaurants, 1)
	assert.Equal(t, "All Day", resp.Restaurants[0].Name)
}

func TestExecute_SkipsFullyBookedRestaurants(t *testing.T) {
	restaurants := []*domain.Restaurant{
		{ID: 1, Name: "Full House", Hours: allWeekHours("10:00-22:00"), Tables: domain.TableInventory{2: 1}},
	}
	bookings := &fakeBookingRepo{byRestaurant: map[int64][]*domain.Booking{
		1: {{TableID: 1, Time: "19:00", Status: domain.StatusConfirmed}},
	}}
	uc := newTestUseCase(&fakeRestaurantRepo{restaurants: restaurants}, bookings)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Restaurants)
}

func TestExecute_ReportsBookedTodayAndFreeTables(t *testing.T) {
	restaurants := []*domain.Restaurant{
		{ID: 1, Name: "Busy Corner", Hours: allWeekHours("10:00-22:00"), Tables: domain.TableInventory{2: 2, 4: 1}},
	}
	bookings := &fakeBookingRepo{byRestaurant: map[int64][]*domain.Booking{
		1: {
			{TableID: 1, Time: "19:00", Status: domain.StatusConfirmed},
			{TableID: 3, Time: "12:00", Status: domain.StatusConfirmed}, // вне окна, стол свободен к 19:00
		},
	}}
	uc := newTestUseCase(&fakeRestaurantRepo{restaurants: restaurants}, bookings)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Restaurants, 1)
	assert.Equal(t, 2, resp.Restaurants[0].FreeTables)
	assert.Equal(t, 2, resp.Restaurants[0].BookedToday)
}

func TestExecute_NearbySlotsRespectHoursAndGrid(t *testing.T) {
	restaurants := []*domain.Restaurant{
		{ID: 1, Name: "Evening Spot", Hours: allWeekHours("10:00-19:30"), Tables: domain.TableInventory{2: 1}},
	}
	uc := newTestUseCase(&fakeRestaurantRepo{restaurants: restaurants}, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Restaurants, 1)
	// кандидаты 18:00..20:00, но после 19:30 ресторан закрыт
	assert.Equal(t,
		[]types.TimeString{"18:00", "18:30", "19:00", "19:30"},
		resp.Restaurants[0].NearbySlots)
}

func TestExecute_ZipLocationBuildsRangeFilter(t *testing.T) {
	rRepo := &fakeRestaurantRepo{}
	uc := newTestUseCase(rRepo, &fakeBookingRepo{})

	req := validRequest()
	req.Location = "10012"

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, rRepo.lastFilter.ZipFrom)
	require.NotNil(t, rRepo.lastFilter.ZipTo)
	assert.Equal(t, 10007, *rRepo.lastFilter.ZipFrom)
	assert.Equal(t, 10017, *rRepo.lastFilter.ZipTo)
	assert.Nil(t, rRepo.lastFilter.City)
}

func TestExecute_CityLocationBuildsCityFilter(t *testing.T) {
	rRepo := &fakeRestaurantRepo{}
	uc := newTestUseCase(rRepo, &fakeBookingRepo{})

	req := validRequest()
	req.Location = "San Jose"

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, rRepo.lastFilter.City)
	assert.Equal(t, "San Jose", *rRepo.lastFilter.City)
	assert.Nil(t, rRepo.lastFilter.ZipFrom)
}

func TestExecute_EmptyLocationNoFilter(t *testing.T) {
	rRepo := &fakeRestaurantRepo{}
	uc := newTestUseCase(rRepo, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, rRepo.lastFilter.City)
	assert.Nil(t, rRepo.lastFilter.ZipFrom)
	assert.Nil(t, rRepo.lastFilter.ZipTo)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeRestaurantRepo{}, &fakeBookingRepo{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNearbySlotCandidates_GridBoundaries(t *testing.T) {
	// у нижней границы сетки слоты до 10:00 отсекаются
	assert.Equal(t,
		[]types.TimeString{"10:00", "10:30", "11:00"},
		nearbySlotCandidates("10:00"))

	// у верхней границы сетки слоты после 23:30 отсекаются
	assert.Equal(t,
		[]types.TimeString{"22:30", "23:00", "23:30"},
		nearbySlotCandidates("23:30"))
}
