package systems

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DrownLimit - сколько гном выдерживает в воде. Эль утраивает (по умолчанию) запас.
func DrownLimit(d *domain.Dwarf, tun *tuning.Tuning) time.Duration {
	limit := tun.DrownTime()
	if d.HasTool(domain.ToolAle) {
		limit *= time.Duration(tun.Dwarves.AleDrownMultiplier)
	}
	return limit
}

// CurrentMoveDelay - задержка хода с учетом кирки и клетки впереди
func CurrentMoveDelay(d *domain.Dwarf, grid *domain.Grid, tun *tuning.Tuning) time.Duration {
	delay := tun.MoveDelay(d.Level)
	if !d.HasTool(domain.ToolPickaxe) {
		return delay
	}
	tile, ok := grid.Get(d.Pos.Add(d.Dir))
	if ok && (tile == domain.TileDirt || tile == domain.TileCrackedDirt) {
		delay /= 2
	}
	return delay
}

// UpdateDwarf - один кадр жизни гнома. Возвращает награду, если гном на нее наступил.
func UpdateDwarf(d *domain.Dwarf, env Env, now time.Duration) domain.Reward {
	if !d.Alive {
		return domain.RewardNone
	}

	// 1. Утопление проверяется каждый кадр, до задержки хода
	if env.Grid.Is(d.Pos, domain.TileWater) {
		if !d.InWater {
			d.InWater = true
			d.DrownStart = now
		} else if now-d.DrownStart > DrownLimit(d, env.Tuning) {
			d.Kill()
			logger.Log.WithFields(logrus.Fields{
				"component": "dwarf_system",
				"dwarf_id":  d.ID,
				"pos":       d.Pos,
			}).Debug("Dwarf drowned")
			return domain.RewardNone
		}
	} else {
		d.InWater = false
		d.DrownStart = 0
	}

	// 2. Задержка считается по клетке впереди ДО принятия решения
	ahead := d.Pos.Add(d.Dir)
	d.MoveDelay = CurrentMoveDelay(d, env.Grid, env.Tuning)
	if now-d.LastMove <= d.MoveDelay {
		return domain.RewardNone
	}

	// 3. Решение и шаг. Окно задержки тратится, даже если гном стоит.
	DecideDirection(d, ahead, env)

	reward := domain.RewardNone
	if !d.Dir.IsZero() {
		reward = MoveDwarf(d, env)
	}
	d.LastMove = now
	return reward
}
