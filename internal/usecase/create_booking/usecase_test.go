package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	"github.com/thalibook/thalibook-api/pkg/ptr"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 101
	created.CreatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, f.err
}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	notified []int64
}

func (f *fakeNotifier) Notify(_ context.Context, userID int64, _ string) error {
	f.notified = append(f.notified, userID)
	return nil
}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testRestaurant() *domain.Restaurant {
	allWeek := map[string]string{}
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		allWeek[day] = "10:00-22:00"
	}
	return &domain.Restaurant{
		ID:         7,
		ManagerID:  3,
		Name:       "Saffron House",
		Hours:      allWeek,
		Tables:     domain.TableInventory{2: 1, 4: 1, 6: 1},
		IsApproved: true,
		Latitude:   ptr.Ptr(40.7),
		Longitude:  ptr.Ptr(-74.0),
	}
}

func newTestUseCase(bRepo *fakeBookingRepo, rRepo *fakeRestaurantRepo, tx *fakeTxManager, n *fakeNotifier) *UseCase {
	uc := NewUseCase(bRepo, rRepo, tx, n, 60, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:       5,
		RestaurantID: 7,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "19:00",
		PartySize:    3,
	}
}

func TestExecute_AssignsSmallestSuitableTable(t *testing.T) {
	bRepo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(bRepo, &fakeRestaurantRepo{restaurant: testRestaurant()}, tx, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// инвентарь {2:1, 4:1, 6:1} -> столы 1(2), 2(4), 3(6); для троих - стол 2
	assert.Equal(t, int64(2), resp.TableID)
	assert.Equal(t, 4, resp.TableSize)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 1, tx.calls)

	// уведомлены менеджер и гость
	assert.ElementsMatch(t, []int64{3, 5}, notifier.notified)
}

func TestExecute_SkipsOccupiedTable(t *testing.T) {
	bRepo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{TableID: 2, Time: "19:30", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(bRepo, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// стол 2 занят в окне - достаётся следующий по размеру, стол 3
	assert.Equal(t, int64(3), resp.TableID)
	assert.Equal(t, 6, resp.TableSize)
}

func TestExecute_NoTableAvailable(t *testing.T) {
	bRepo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{TableID: 2, Time: "19:00", Status: domain.StatusConfirmed},
			{TableID: 3, Time: "19:30", Status: domain.StatusConfirmed},
		},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(bRepo, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoTableAvailable)
	assert.Nil(t, bRepo.created)
	assert.Empty(t, notifier.notified)
}

func TestExecute_CancelledBookingFreesTable(t *testing.T) {
	bRepo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{TableID: 2, Time: "19:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(bRepo, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TableID)
}

func TestExecute_PartyTooLarge(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, &fakeNotifier{})

	req := validRequest()
	req.PartySize = 10

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPartyTooLarge)
}

func TestExecute_RestaurantClosed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, &fakeNotifier{})

	req := validRequest()
	req.Time = "23:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_UnapprovedRestaurantHidden(t *testing.T) {
	restaurant := testRestaurant()
	restaurant.IsApproved = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{restaurant: restaurant}, &fakeTxManager{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound}, &fakeTxManager{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, &fakeNotifier{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidPartySize(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRestaurantRepo{restaurant: testRestaurant()}, &fakeTxManager{}, &fakeNotifier{})

	for _, size := range []int{0, -1, domain.MaxPartySize + 1} {
		req := validRequest()
		req.PartySize = size

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "partySize %d", size)
	}
}
