package systems

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
)

// BlockReason - почему гном не смог сделать шаг
type BlockReason uint8

const (
	NotBlocked BlockReason = iota
	BlockedBounds
	BlockedHardDirt
	BlockedSolid // стена или источник
	BlockedDwarf // гном другого уровня
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Position
	Tile      domain.Tile
	HasMoved  bool
	Killed    bool // шаг в лаву
	BlockedBy BlockReason
}

// CanPassHardDirt - твердую землю (и трещины в ней) проходит гном высокого уровня или с киркой
func CanPassHardDirt(d *domain.Dwarf, tun *tuning.Tuning) bool {
	return d.Level >= tun.Dwarves.MinLevelForHardDirt || d.HasTool(domain.ToolPickaxe)
}

// IsAheadBlocked - проверка, которой ИИ решает, пора ли сворачивать.
// Лава и другие гномы сюда не входят: гном о них "не знает".
func IsAheadBlocked(d *domain.Dwarf, target domain.Position, grid *domain.Grid, tun *tuning.Tuning) bool {
	tile, ok := grid.Get(target)
	if !ok {
		return true
	}
	if tile == domain.TileWall || tile.IsSource() {
		return true
	}
	return tile.IsHard() && !CanPassHardDirt(d, tun)
}

// CalculateMove вычисляет шаг гнома по текущему направлению. Не меняет состояние мира!
func CalculateMove(d *domain.Dwarf, grid *domain.Grid, dwarves []*domain.Dwarf, tun *tuning.Tuning) MovementResult {
	target := d.Pos.Add(d.Dir)
	res := MovementResult{Target: target}

	// 1. Проверка границ
	tile, ok := grid.Get(target)
	if !ok {
		res.BlockedBy = BlockedBounds
		return res
	}
	res.Tile = tile

	// 2. Лава убивает сразу, без шага
	if tile == domain.TileLava {
		res.Killed = true
		return res
	}

	// 3. Твердая земля
	if tile.IsHard() && !CanPassHardDirt(d, tun) {
		res.BlockedBy = BlockedHardDirt
		return res
	}

	// 4. Стены и источники
	if tile == domain.TileWall || tile.IsSource() {
		res.BlockedBy = BlockedSolid
		return res
	}

	// 5. Гномы. Одинаковый уровень может стоять в одной клетке (так они сливаются).
	for _, other := range dwarves {
		if other == d || !other.Alive {
			continue
		}
		if other.Pos == target && other.Level != d.Level {
			res.BlockedBy = BlockedDwarf
			return res
		}
	}

	res.HasMoved = true
	return res
}

// MoveDwarf выполняет шаг и возвращает награду за клетку, на которую гном зашел
func MoveDwarf(d *domain.Dwarf, env Env) domain.Reward {
	res := CalculateMove(d, env.Grid, env.Dwarves, env.Tuning)
	if res.Killed {
		d.Kill()
		return domain.RewardNone
	}
	if !res.HasMoved {
		return domain.RewardNone
	}

	d.Pos = res.Target
	reward := res.Tile.RewardOf()

	// Все, кроме пустоты и воды, гном "съедает"
	if res.Tile != domain.TileEmpty && res.Tile != domain.TileWater {
		env.Grid.Set(res.Target, domain.TileEmpty)
	}

	RevealSurroundings(d, env.Fog, env.Tuning)
	return reward
}
