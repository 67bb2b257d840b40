package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Dwarf - автономный гном. Никаких ссылок на других гномов не хранит,
// соседей ищем только по позиции.
type Dwarf struct {
	ID    string
	Pos   Position
	Level int
	// Dir - вектор движения. Нулевой вектор означает "стоять на месте".
	Dir   Position
	Alive bool

	// Тайминги движения
	LastMove  time.Duration
	MoveDelay time.Duration

	// Утопление
	InWater    bool
	DrownStart time.Duration

	Tools mapset.Set[Tool]
}

// NewDwarf создает живого гнома без направления.
// Начальное направление выбирает вызывающий код (ему нужен генератор случайных чисел).
func NewDwarf(pos Position, level int, now time.Duration) *Dwarf {
	d := &Dwarf{
		ID:       uuid.NewString(),
		Pos:      pos,
		Alive:    true,
		LastMove: now,
		Tools:    mapset.New[Tool](),
	}
	d.SetLevel(level)
	return d
}

// SetLevel выставляет уровень, зажимая его в [1, MaxLevel]
func (d *Dwarf) SetLevel(level int) {
	d.Level = min(max(level, 1), MaxLevel)
}

func (d *Dwarf) HasTool(t Tool) bool {
	return d.Tools.Has(t)
}

// GiveTool возвращает false, если инструмент уже был
func (d *Dwarf) GiveTool(t Tool) bool {
	if d.Tools.Has(t) {
		return false
	}
	d.Tools.Put(t)
	return true
}

// MissingTools - инструменты, которых у гнома еще нет (в порядке AllTools)
func (d *Dwarf) MissingTools() []Tool {
	var out []Tool
	for _, t := range AllTools {
		if !d.Tools.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Kill помечает гнома мертвым. Из коллекции его уберет оркестратор.
func (d *Dwarf) Kill() {
	d.Alive = false
}
