package domain

import "time"

// FloodWarning - клетка, которую вот-вот зальет. Только для отрисовки.
type FloodWarning struct {
	Pos       Position
	ExpiresAt time.Duration
}

// RunState - счетчики текущего уровня. Сбрасываются целиком при (пере)запуске уровня.
type RunState struct {
	Gold           int
	ChestsFound    int
	TotalChests    int
	UpgradePointer int
	GameOver       bool
	Won            bool
}

// World - весь изменяемый стейт уровня. Им владеет оркестратор,
// системы получают его по указателю и своих копий не держат.
type World struct {
	Level int
	LevelMaps
	Spawn   Position
	Dwarves []*Dwarf
	Arrows  *ArrowSet
	Run     RunState

	LastSpawn time.Duration
	LastFluid time.Duration
}

// NewWorld собирает мир уровня вокруг готовых сеток
func NewWorld(level int, maps LevelMaps, spawn Position) *World {
	return &World{
		Level:     level,
		LevelMaps: maps,
		Spawn:     spawn,
		Arrows:    NewArrowSet(),
		Run:       RunState{UpgradePointer: 1},
	}
}

// AddDwarf добавляет гнома в конец коллекции
func (w *World) AddDwarf(d *Dwarf) {
	w.Dwarves = append(w.Dwarves, d)
}

// LivingDwarves считает живых гномов
func (w *World) LivingDwarves() int {
	n := 0
	for _, d := range w.Dwarves {
		if d.Alive {
			n++
		}
	}
	return n
}

// RemoveDead убирает мертвых гномов, сохраняя порядок остальных.
// Возвращает количество удаленных.
func (w *World) RemoveDead() int {
	alive := w.Dwarves[:0]
	removed := 0
	for _, d := range w.Dwarves {
		if d.Alive {
			alive = append(alive, d)
		} else {
			removed++
		}
	}
	for i := len(alive); i < len(w.Dwarves); i++ {
		w.Dwarves[i] = nil
	}
	w.Dwarves = alive
	return removed
}

// DwarfAt возвращает первого живого гнома в клетке
func (w *World) DwarfAt(p Position) *Dwarf {
	for _, d := range w.Dwarves {
		if d.Alive && d.Pos == p {
			return d
		}
	}
	return nil
}
