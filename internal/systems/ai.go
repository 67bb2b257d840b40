package systems

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
)

// Env - то, что нужно гному, чтобы принять решение и сходить.
// Все ссылки указывают в World оркестратора, копий нет.
type Env struct {
	Grid    *domain.Grid
	Fog     *domain.FogGrid
	Arrows  *domain.ArrowSet
	Dwarves []*domain.Dwarf
	Rng     utils.Rand
	Tuning  *tuning.Tuning
}

// SteerByArrow - стрелка под ногами задает направление безусловно
func SteerByArrow(d *domain.Dwarf, arrows *domain.ArrowSet) bool {
	if arrows == nil {
		return false
	}
	a, ok := arrows.At(d.Pos)
	if !ok {
		return false
	}
	d.Dir = a.Dir.Vector()
	return true
}

// SeekAdjacent поворачивает гнома к соседней награде, а если ее нет -
// к живому соседу того же уровня (чтобы слиться).
func SeekAdjacent(d *domain.Dwarf, grid *domain.Grid, dwarves []*domain.Dwarf) bool {
	for _, off := range domain.CardinalOffsets() {
		if tile, ok := grid.Get(d.Pos.Add(off)); ok && tile.IsReward() {
			d.Dir = off
			return true
		}
	}

	for _, other := range dwarves {
		if other == d || !other.Alive || other.Level != d.Level {
			continue
		}
		for _, off := range domain.CardinalOffsets() {
			if other.Pos == d.Pos.Add(off) {
				d.Dir = off
				return true
			}
		}
	}
	return false
}

// PickRandomDirection выбирает случайное направление (вверх, вниз, влево, вправо),
// исключая exclude. Если исключать нечего или вариантов не осталось - из всех четырех.
func PickRandomDirection(d *domain.Dwarf, rng utils.Rand, exclude domain.Position) {
	all := domain.CardinalOffsets()
	options := make([]domain.Position, 0, len(all))
	for _, off := range all {
		if off != exclude {
			options = append(options, off)
		}
	}
	if len(options) == 0 {
		options = all
	}
	d.Dir = options[rng.Intn(len(options))]
}

// DecideDirection - приоритеты: стрелка, затем награда/сосед, затем обход препятствия.
// ahead - клетка впереди по направлению, которое было до решения.
func DecideDirection(d *domain.Dwarf, ahead domain.Position, env Env) {
	if SteerByArrow(d, env.Arrows) {
		return
	}
	if SeekAdjacent(d, env.Grid, env.Dwarves) {
		return
	}
	if IsAheadBlocked(d, ahead, env.Grid, env.Tuning) {
		PickRandomDirection(d, env.Rng, d.Dir.Neg())
	}
}
