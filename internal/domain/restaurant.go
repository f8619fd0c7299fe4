package domain

import (
	"strings"
	"time"

	"github.com/thalibook/thalibook-api/pkg/types"
)

// Restaurant represents a restaurant listing
type Restaurant struct {
	ID          int64
	ManagerID   int64
	Name        string
	Address     string
	City        string
	State       string
	ZipCode     string
	Phone       string
	Description string
	Cuisine     string
	CostRating  string // "$", "$$" или "$$$"

	// Hours часы работы по дням недели: "Mon" -> "11:00-21:00".
	// Отсутствие дня означает, что ресторан в этот день закрыт.
	Hours map[string]string

	// Tables инвентарь столов: размер (кол-во мест) -> количество столов этого размера
	Tables TableInventory

	Latitude  *float64
	Longitude *float64
	PhotoURL  *string

	AvgRating    float64
	TotalReviews int

	IsApproved bool
	CreatedAt  time.Time
}

// dayKeys ключи дней недели в том виде, в каком они хранятся в Hours
var dayKeys = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// DayKey возвращает ключ дня недели для Hours ("Mon".."Sun")
func DayKey(weekday time.Weekday) string {
	return dayKeys[weekday]
}

// HoursFor возвращает интервал работы на указанный день недели.
// Если ресторан закрыт в этот день - ok=false.
func (r *Restaurant) HoursFor(weekday time.Weekday) (open, close types.TimeString, ok bool) {
	interval, found := r.Hours[DayKey(weekday)]
	if !found {
		return "", "", false
	}

	parts := strings.SplitN(interval, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	openTime, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", "", false
	}
	closeTime, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", false
	}

	return openTime, closeTime, true
}

// IsOpenAt returns true if the restaurant is open at the given time on the given weekday
func (r *Restaurant) IsOpenAt(weekday time.Weekday, t types.TimeString) bool {
	open, close, ok := r.HoursFor(weekday)
	if !ok {
		return false
	}
	return !t.IsBefore(open) && !t.IsAfter(close)
}

// HasCoordinates returns true if both latitude and longitude are set
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// FullAddress возвращает полный почтовый адрес для геокодирования
func (r *Restaurant) FullAddress() string {
	return r.Address + ", " + r.City + ", " + r.State + " " + r.ZipCode
}
