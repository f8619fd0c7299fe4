package search_restaurants

import (
	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/pkg/types"
)

// nearbySlotCandidates возвращает получасовые слоты вокруг запрошенного
// времени: само время и по SlotNeighborRadius шагов в обе стороны,
// обрезанные по фиксированной сетке слотов.
func nearbySlotCandidates(requested types.TimeString) []types.TimeString {
	gridStart := types.TimeString(domain.SlotGridStart)
	gridEnd := types.TimeString(domain.SlotGridEnd)

	candidates := make([]types.TimeString, 0, 2*domain.SlotNeighborRadius+1)

	for step := -domain.SlotNeighborRadius; step <= domain.SlotNeighborRadius; step++ {
		slot, err := requested.AddMinutes(step * domain.SlotStepMinutes)
		if err != nil {
			// Выход за границы суток
			continue
		}

		if slot.IsBefore(gridStart) || slot.IsAfter(gridEnd) {
			continue
		}

		candidates = append(candidates, slot)
	}

	return candidates
}

// countFreeSuitableTables возвращает количество столов размера >= partySize,
// свободных в окне вокруг указанного времени
func countFreeSuitableTables(
	inventory domain.TableInventory,
	bookings []*domain.Booking,
	at types.TimeString,
	windowMinutes int,
	partySize int,
) int {
	suitable := domain.SmallestSuitableTables(inventory, partySize)
	if len(suitable) == 0 {
		return 0
	}

	occupied := domain.OccupiedTableIDs(bookings, at, windowMinutes)

	free := 0
	for _, t := range suitable {
		if !occupied[t.ID] {
			free++
		}
	}

	return free
}
