package systems

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
)

// FluidStep - следующее состояние жидкостей
type FluidStep struct {
	Grid     *domain.Grid
	Lifetime *domain.LifetimeGrid
	Warnings []domain.FloodWarning
}

// StepFluids продвигает воду и лаву на один шаг.
// Входные сетки только читаются, результат пишется в новые буферы.
func StepFluids(grid *domain.Grid, lifetime *domain.LifetimeGrid, now time.Duration, tun *tuning.Tuning) FluidStep {
	next := grid.Clone()
	nextLife := domain.NewLifetimeGrid(grid.Width, grid.Height)
	var warnings []domain.FloodWarning

	// 1. Связность: BFS от каждого источника по жидкости того же типа
	connected := markConnected(grid)
	for i, ok := range connected {
		if ok {
			nextLife.Expiry[i] = domain.LifetimeInfinite
		}
	}

	warnAt := now + tun.WarningDuration()
	expireAt := now + tun.FluidLifetime()

	// fill пишет жидкость в next, только если в текущей сетке клетка пустая
	fill := func(p domain.Position, fluid domain.Tile, life time.Duration) bool {
		if !grid.Is(p, domain.TileEmpty) {
			return false
		}
		next.Set(p, fluid)
		nextLife.Set(p, life)
		return true
	}

	// 2. Течение и испарение, снизу вверх
	for y := grid.Height - 1; y >= 0; y-- {
		for x := 0; x < grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			idx := grid.GetIndex(x, y)
			tile := grid.Tiles[idx]

			switch {
			case tile.IsSource():
				fluid := tile.FluidOf()
				for _, n := range p.Neighbors4() {
					if fill(n, fluid, domain.LifetimeInfinite) {
						warnings = append(warnings, domain.FloodWarning{Pos: n, ExpiresAt: warnAt})
					}
				}

			case tile.IsFluid() && connected[idx]:
				below := p.Shift(0, 1)
				if grid.Is(below, domain.TileEmpty) {
					fill(below, tile, domain.LifetimeInfinite)
				} else {
					fill(p.Shift(-1, 0), tile, domain.LifetimeInfinite)
					fill(p.Shift(1, 0), tile, domain.LifetimeInfinite)
				}

			case tile.IsFluid():
				prev := lifetime.Expiry[idx]
				switch {
				case prev == domain.LifetimeInfinite || prev <= 0:
					// Только что оторвалась от источника: запускаем таймер
					nextLife.Expiry[idx] = expireAt
				case now >= prev:
					next.Tiles[idx] = domain.TileEmpty
					nextLife.Expiry[idx] = 0
				default:
					nextLife.Expiry[idx] = prev
					below := p.Shift(0, 1)
					if fill(below, tile, prev) {
						next.Tiles[idx] = domain.TileEmpty
						nextLife.Expiry[idx] = 0
					}
				}
			}
		}
	}

	return FluidStep{Grid: next, Lifetime: nextLife, Warnings: warnings}
}

// markConnected возвращает флаги клеток жидкости, достижимых от источников
func markConnected(grid *domain.Grid) []bool {
	connected := make([]bool, len(grid.Tiles))
	queue := make([]domain.Position, 0, 64)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			src := grid.Tiles[grid.GetIndex(x, y)]
			if !src.IsSource() {
				continue
			}
			fluid := src.FluidOf()
			queue = append(queue[:0], domain.Position{X: x, Y: y})
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, n := range cur.Neighbors4() {
					if !grid.Is(n, fluid) {
						continue
					}
					ni := grid.GetIndex(n.X, n.Y)
					if connected[ni] {
						continue
					}
					connected[ni] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return connected
}
