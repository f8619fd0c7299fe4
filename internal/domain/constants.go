package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default booking policy values
const (
	// DefaultMatchWindowMinutes окно близости по времени: бронирование занимает стол,
	// если его час находится в пределах этого окна от запрошенного времени.
	// Прокси для неопределенной длительности посадки, вынесено в конфигурацию.
	DefaultMatchWindowMinutes = 60

	// SlotStepMinutes шаг сетки временных слотов
	SlotStepMinutes = 30

	// SlotNeighborRadius сколько соседних слотов сетки предлагать вокруг запрошенного времени
	SlotNeighborRadius = 2

	// ZipSearchRadius диапазон почтовых индексов при поиске по zip (zip±radius)
	ZipSearchRadius = 5
)

// Slot grid boundaries: предлагаемые слоты берутся из фиксированной сетки 10:00-23:30
const (
	SlotGridStart = "10:00"
	SlotGridEnd   = "23:30"
)

// Business validation constants
const (
	MinRating           = 1
	MaxRating           = 5
	MaxCommentLength    = 400
	MaxPartySize        = 20
	TopRestaurantsLimit = 5
)

// ActiveStatuses статусы бронирований, занимающих стол.
// Используется при расчёте доступности столов.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
