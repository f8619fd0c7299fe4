package restaurants

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	"github.com/thalibook/thalibook-api/internal/integrations/geocoder"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
	"github.com/thalibook/thalibook-api/pkg/ptr"
)

type fakeRestaurantRepo struct {
	byID    map[int64]*domain.Restaurant
	nextID  int64
	deleted []int64
}

func newFakeRestaurantRepo(restaurants ...*domain.Restaurant) *fakeRestaurantRepo {
	f := &fakeRestaurantRepo{byID: make(map[int64]*domain.Restaurant)}
	for _, r := range restaurants {
		f.byID[r.ID] = r
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *fakeRestaurantRepo) Create(_ context.Context, r *domain.Restaurant) (*domain.Restaurant, error) {
	for _, existing := range f.byID {
		if existing.Name == r.Name {
			return nil, restaurantRepo.ErrDuplicateName
		}
	}
	f.nextID++
	created := *r
	created.ID = f.nextID
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, r *domain.Restaurant) error {
	if _, ok := f.byID[r.ID]; !ok {
		return restaurantRepo.ErrRestaurantNotFound
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return restaurantRepo.ErrRestaurantNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRestaurantRepo) ListByManager(_ context.Context, managerID int64) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	for _, r := range f.byID {
		if r.ManagerID == managerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) ListPending(_ context.Context) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	for _, r := range f.byID {
		if !r.IsApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) ListAll(_ context.Context) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

type fakeBookingRepo struct {
	countToday int64
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CountForDate(_ context.Context, _ int64, _ time.Time) (int64, error) {
	return f.countToday, nil
}

type fakeGeocoder struct {
	location     *geocoder.Location
	err          error
	addresses    []string
	fallbackOnly bool
}

func (f *fakeGeocoder) GeocodeWithGracefulDegradation(_ context.Context, address string) (*geocoder.Location, error) {
	f.addresses = append(f.addresses, address)
	if f.fallbackOnly && len(f.addresses) == 1 {
		return nil, geocoder.ErrAddressNotFound
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.location, nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) NotifyAdmin(_ context.Context, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateRestaurantRequest {
	return &models.CreateRestaurantRequest{
		Name:       "Saffron House",
		Cuisine:    "North Indian",
		CostRating: "$$",
		Address:    "12 Curry Lane",
		City:       "San Jose",
		State:      "CA",
		ZipCode:    "95112",
		Hours:      map[string]string{"Mon": "10:00-22:00"},
		Tables:     map[int]int{2: 4, 4: 2},
	}
}

func newTestService(repo *fakeRestaurantRepo, geo *fakeGeocoder, notifier *fakeNotifier) *Service {
	return NewService(repo, &fakeBookingRepo{}, geo, notifier, nopLogger{})
}

func TestCreate_StartsUnapprovedAndNotifiesAdmin(t *testing.T) {
	repo := newFakeRestaurantRepo()
	geo := &fakeGeocoder{location: &geocoder.Location{Latitude: 37.33, Longitude: -121.89}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, geo, notifier)

	resp, err := svc.Create(context.Background(), 3, validCreateRequest())

	require.NoError(t, err)
	assert.False(t, resp.IsApproved)
	assert.Equal(t, int64(3), resp.ManagerID)
	require.NotNil(t, resp.Latitude)
	assert.InDelta(t, 37.33, *resp.Latitude, 0.001)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Saffron House")
}

func TestCreate_GeocoderFailureDoesNotBlock(t *testing.T) {
	repo := newFakeRestaurantRepo()
	geo := &fakeGeocoder{err: geocoder.ErrServiceDegraded}
	svc := newTestService(repo, geo, &fakeNotifier{})

	resp, err := svc.Create(context.Background(), 3, validCreateRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.Latitude)
	assert.Nil(t, resp.Longitude)
}

func TestCreate_FallsBackToZipGeocoding(t *testing.T) {
	repo := newFakeRestaurantRepo()
	geo := &fakeGeocoder{
		location:     &geocoder.Location{Latitude: 37.3, Longitude: -121.9},
		fallbackOnly: true,
	}
	svc := newTestService(repo, geo, &fakeNotifier{})

	resp, err := svc.Create(context.Background(), 3, validCreateRequest())

	require.NoError(t, err)
	require.Len(t, geo.addresses, 2)
	assert.Equal(t, "95112 CA", geo.addresses[1])
	require.NotNil(t, resp.Latitude)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := newFakeRestaurantRepo(&domain.Restaurant{ID: 1, Name: "Saffron House"})
	geo := &fakeGeocoder{location: &geocoder.Location{}}
	svc := newTestService(repo, geo, &fakeNotifier{})

	_, err := svc.Create(context.Background(), 3, validCreateRequest())

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_InvalidHours(t *testing.T) {
	svc := newTestService(newFakeRestaurantRepo(), &fakeGeocoder{}, &fakeNotifier{})

	for _, hours := range []map[string]string{
		{"Mon": "10:00"},
		{"Mon": "25:00-26:00"},
		{"Mon": "22:00-10:00"},
	} {
		req := validCreateRequest()
		req.Hours = hours
		_, err := svc.Create(context.Background(), 3, req)
		assert.ErrorIs(t, err, ErrInvalidInput, "hours %v", hours)
	}
}

func TestCreate_InvalidCostRating(t *testing.T) {
	svc := newTestService(newFakeRestaurantRepo(), &fakeGeocoder{}, &fakeNotifier{})

	req := validCreateRequest()
	req.CostRating = "$$$$"
	_, err := svc.Create(context.Background(), 3, req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_OwnershipChecks(t *testing.T) {
	const managerID, adminID, strangerID = 3, 1, 9

	newRepo := func() *fakeRestaurantRepo {
		return newFakeRestaurantRepo(&domain.Restaurant{
			ID:        7,
			ManagerID: managerID,
			Name:      "Saffron House",
			Hours:     map[string]string{"Mon": "10:00-22:00"},
			Tables:    domain.TableInventory{2: 4},
		})
	}
	req := &models.UpdateRestaurantRequest{Description: ptr.Ptr("Family-run kitchen")}

	t.Run("manager updates own restaurant", func(t *testing.T) {
		repo := newRepo()
		svc := newTestService(repo, &fakeGeocoder{}, &fakeNotifier{})

		resp, err := svc.Update(context.Background(), 7, managerID, domain.RoleManager, req)

		require.NoError(t, err)
		assert.Equal(t, "Family-run kitchen", resp.Description)
	})

	t.Run("admin updates any restaurant", func(t *testing.T) {
		svc := newTestService(newRepo(), &fakeGeocoder{}, &fakeNotifier{})

		_, err := svc.Update(context.Background(), 7, adminID, domain.RoleAdmin, req)
		assert.NoError(t, err)
	})

	t.Run("foreign manager denied", func(t *testing.T) {
		svc := newTestService(newRepo(), &fakeGeocoder{}, &fakeNotifier{})

		_, err := svc.Update(context.Background(), 7, strangerID, domain.RoleManager, req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestUpdate_InvalidTablesRejected(t *testing.T) {
	repo := newFakeRestaurantRepo(&domain.Restaurant{ID: 7, ManagerID: 3})
	svc := newTestService(repo, &fakeGeocoder{}, &fakeNotifier{})

	_, err := svc.Update(context.Background(), 7, 3, domain.RoleManager, &models.UpdateRestaurantRequest{
		Tables: &map[int]int{0: 2},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_OwnershipChecks(t *testing.T) {
	repo := newFakeRestaurantRepo(&domain.Restaurant{ID: 7, ManagerID: 3})
	svc := newTestService(repo, &fakeGeocoder{}, &fakeNotifier{})

	err := svc.Delete(context.Background(), 7, 9, domain.RoleManager)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 7, 3, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deleted)

	err = svc.Delete(context.Background(), 7, 3, domain.RoleManager)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetDetails_IncludesBookingsToday(t *testing.T) {
	repo := newFakeRestaurantRepo(&domain.Restaurant{ID: 7, ManagerID: 3, Name: "Saffron House"})
	svc := NewService(repo, &fakeBookingRepo{countToday: 4}, &fakeGeocoder{}, &fakeNotifier{}, nopLogger{})

	resp, err := svc.GetDetails(context.Background(), 7, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Saffron House", resp.Restaurant.Name)
	assert.Equal(t, int64(4), resp.BookingsToday)
}

func TestListPending_OnlyUnapproved(t *testing.T) {
	repo := newFakeRestaurantRepo(
		&domain.Restaurant{ID: 1, Name: "Approved", IsApproved: true},
		&domain.Restaurant{ID: 2, Name: "Pending"},
	)
	svc := newTestService(repo, &fakeGeocoder{}, &fakeNotifier{})

	resp, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Restaurants, 1)
	assert.Equal(t, "Pending", resp.Restaurants[0].Name)
}
