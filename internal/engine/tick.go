package engine

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/systems"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Tick - один кадр симуляции. now - монотонное время от произвольного начала.
// На паузе и после конца уровня мир не меняется.
func (g *Game) Tick(now time.Duration) {
	g.now = now
	g.Warnings.PruneExpired(now)

	w := g.World
	if g.Paused || w.Run.GameOver {
		return
	}

	// 1. Спавн по таймеру
	if now-w.LastSpawn > g.tun.SpawnDelay() {
		g.spawnDwarf(w.Spawn, now)
		w.LastSpawn = now
	}

	// 2. Жидкости на своем, более медленном, темпе
	if now-w.LastFluid > g.tun.FluidUpdateDelay() {
		g.stepFluids(now)
		w.LastFluid = now
	}

	// 3-4. Гномы и их награды
	upgrade := g.updateDwarves(now)

	// 5. Массовое повышение
	if upgrade {
		g.massUpgrade()
	}

	// 6. Слияния
	for _, m := range MergePass(w.Dwarves) {
		g.emit(domain.Event{
			Type:    domain.EventDwarvesMerged,
			Pos:     m.Survivor.Pos,
			DwarfID: m.Survivor.ID,
			Level:   m.Survivor.Level,
		})
	}

	// 7. Уборка
	w.RemoveDead()

	// 8. Поражение
	if w.LivingDwarves() == 0 && !w.Run.Won {
		w.Run.GameOver = true
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"level":     w.Level,
			"gold":      w.Run.Gold,
			"chests":    w.Run.ChestsFound,
		}).Info("💀 All dwarves are gone")
		g.emit(domain.Event{Type: domain.EventLevelLost, Level: w.Level})
	}
}

func (g *Game) dwarfEnv() systems.Env {
	w := g.World
	return systems.Env{
		Grid:    w.Grid,
		Fog:     w.Fog,
		Arrows:  w.Arrows,
		Dwarves: w.Dwarves,
		Rng:     g.Rng,
		Tuning:  g.tun,
	}
}

// spawnDwarf создает гнома 1 уровня и сбрасывает указатель повышения
func (g *Game) spawnDwarf(at domain.Position, now time.Duration) *domain.Dwarf {
	w := g.World
	d := domain.NewDwarf(at, 1, now)
	systems.PickRandomDirection(d, g.Rng, domain.Position{})
	w.AddDwarf(d)
	systems.RevealSurroundings(d, w.Fog, g.tun)
	w.Run.UpgradePointer = 1

	g.emit(domain.Event{Type: domain.EventDwarfSpawned, Pos: at, DwarfID: d.ID, Level: 1})
	return d
}

func (g *Game) stepFluids(now time.Duration) {
	w := g.World
	res := systems.StepFluids(w.Grid, w.Lifetime, now, g.tun)
	w.LevelMaps = domain.NewLevelMaps(res.Grid, w.Fog, res.Lifetime)

	for _, warn := range res.Warnings {
		g.Warnings.Push(warn)
	}
	if len(res.Warnings) > 0 {
		g.emit(domain.Event{
			Type:  domain.EventFloodWarning,
			Pos:   res.Warnings[0].Pos,
			Count: len(res.Warnings),
		})
	}
}

// updateDwarves обновляет всех живых гномов, бывших на начало кадра.
// Новые гномы (из капсул) добавляются в конец после цикла.
// После победы посреди кадра оставшиеся гномы уже не ходят.
// Возвращает true, если кто-то подобрал звезду.
func (g *Game) updateDwarves(now time.Duration) bool {
	w := g.World
	env := g.dwarfEnv()
	upgrade := false
	var born []*domain.Dwarf

	for _, d := range w.Dwarves {
		if w.Run.GameOver {
			break
		}
		if !d.Alive {
			continue
		}
		reward := systems.UpdateDwarf(d, env, now)
		if !d.Alive {
			g.emit(domain.Event{Type: domain.EventDwarfKilled, Pos: d.Pos, DwarfID: d.ID, Level: d.Level})
			continue
		}

		out := g.resolveReward(d, reward, now)
		upgrade = upgrade || out.upgrade
		if out.born != nil {
			born = append(born, out.born)
		}
	}

	for _, d := range born {
		w.AddDwarf(d)
	}
	return upgrade
}

func (g *Game) massUpgrade() {
	w := g.World
	next, promoted := PerformUpgrade(w.Dwarves, w.Run.UpgradePointer)
	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"pointer":   w.Run.UpgradePointer,
		"next":      next,
		"promoted":  promoted,
	}).Debug("Mass upgrade")
	w.Run.UpgradePointer = next
}
