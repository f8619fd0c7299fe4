package domain

import "sort"

// TableInventory инвентарь столов ресторана: размер стола (мест) -> количество
type TableInventory map[int]int

// TotalTables возвращает общее количество столов в инвентаре
func (inv TableInventory) TotalTables() int {
	total := 0
	for _, count := range inv {
		total += count
	}
	return total
}

// LargestSize возвращает размер самого большого стола (0 для пустого инвентаря)
func (inv TableInventory) LargestSize() int {
	largest := 0
	for size := range inv {
		if size > largest {
			largest = size
		}
	}
	return largest
}

// Table синтетический стол, выведенный из инвентаря на чтении.
// Столы не хранятся в БД как отдельные сущности: идентификатор позиционный
// и детерминированно восстанавливается из одного и того же инвентаря.
type Table struct {
	ID   int64
	Size int
}

// SyntheticTables разворачивает инвентарь в список столов с уникальными ID.
// Порядок фиксирован: размеры по возрастанию, ID последовательно с 1.
// Первый стол размера S всегда получает один и тот же ID при неизменном инвентаре.
func SyntheticTables(inv TableInventory) []Table {
	sizes := make([]int, 0, len(inv))
	for size := range inv {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	tables := make([]Table, 0, inv.TotalTables())
	nextID := int64(1)

	for _, size := range sizes {
		for i := 0; i < inv[size]; i++ {
			tables = append(tables, Table{ID: nextID, Size: size})
			nextID++
		}
	}

	return tables
}

// SmallestSuitableTables возвращает столы, вмещающие partySize человек,
// от меньших к большим. Используется при назначении стола бронированию,
// чтобы не занимать большие столы маленькими компаниями.
func SmallestSuitableTables(inv TableInventory, partySize int) []Table {
	all := SyntheticTables(inv)
	suitable := make([]Table, 0, len(all))
	for _, t := range all {
		if t.Size >= partySize {
			suitable = append(suitable, t)
		}
	}
	return suitable
}
