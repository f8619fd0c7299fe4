package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/pkg/types"
)

func TestWithinMatchWindow(t *testing.T) {
	tests := []struct {
		name   string
		a, b   types.TimeString
		window int
		want   bool
	}{
		{"exact match", "19:00", "19:00", 60, true},
		{"inside window", "19:00", "19:30", 60, true},
		{"boundary inclusive", "19:00", "20:00", 60, true},
		{"outside window", "19:00", "20:30", 60, false},
		{"symmetric", "20:00", "19:00", 60, true},
		{"narrow window", "19:00", "19:30", 15, false},
		{"invalid time", "oops", "19:00", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinMatchWindow(tt.a, tt.b, tt.window))
		})
	}
}

func TestOccupiedTableIDs(t *testing.T) {
	bookings := []*Booking{
		{TableID: 1, Time: "19:00", Status: StatusConfirmed},
		{TableID: 2, Time: "19:30", Status: StatusPending},
		{TableID: 3, Time: "19:00", Status: StatusCancelled}, // отменённое стол не держит
		{TableID: 4, Time: "12:00", Status: StatusConfirmed}, // слишком далеко по времени
	}

	occupied := OccupiedTableIDs(bookings, "19:00", 60)

	require.Len(t, occupied, 2)
	assert.True(t, occupied[1])
	assert.True(t, occupied[2])
	assert.False(t, occupied[3])
	assert.False(t, occupied[4])
}

func TestBooking_StatusTransitions(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeConfirmed())

	assert.True(t, confirmed.IsActive())
	assert.False(t, cancelled.IsActive())
}

func TestActiveStatuses_MatchIsActive(t *testing.T) {
	// Список активных статусов и IsActive должны описывать одно и то же
	// множество - по нему же фильтрует хранилище бронирований
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		b := &Booking{Status: status}

		inList := false
		for _, s := range ActiveStatuses {
			if s == status {
				inList = true
			}
		}

		assert.Equal(t, inList, b.IsActive(), "status %s", status)
	}

	assert.NotContains(t, ActiveStatuses, StatusCancelled)
}
