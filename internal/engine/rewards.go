package engine

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/systems"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/sirupsen/logrus"
)

type rewardOutcome struct {
	upgrade bool
	born    *domain.Dwarf // гном из капсулы, добавляется после цикла
}

// resolveReward применяет награду сразу после шага гнома
func (g *Game) resolveReward(d *domain.Dwarf, r domain.Reward, now time.Duration) rewardOutcome {
	w := g.World
	var out rewardOutcome
	// После победы счетчики заморожены
	if r == domain.RewardNone || w.Run.GameOver {
		return out
	}

	switch r {
	case domain.RewardGold:
		w.Run.Gold++

	case domain.RewardChest:
		w.Run.ChestsFound++
		if w.Run.ChestsFound == w.Run.TotalChests {
			w.Run.GameOver = true
			w.Run.Won = true
			logger.Log.WithFields(logrus.Fields{
				"component": "game",
				"level":     w.Level,
				"gold":      w.Run.Gold,
			}).Info("🏆 All chests found")
			defer g.emit(domain.Event{Type: domain.EventLevelWon, Level: w.Level})
		}

	case domain.RewardPresent:
		g.grantTool(d)

	case domain.RewardUpgradeLoot:
		out.upgrade = true

	case domain.RewardDwarfLoot:
		out.born = g.hatchDwarf(d, now)

	case domain.RewardCrackedDirt:
		g.caveIn(d.Pos)
	}

	g.emit(domain.Event{Type: domain.EventRewardCollected, Pos: d.Pos, DwarfID: d.ID, Reward: r, Level: d.Level})
	return out
}

// grantTool выдает случайный недостающий инструмент, а если есть все - бонусное золото
func (g *Game) grantTool(d *domain.Dwarf) {
	missing := d.MissingTools()
	if len(missing) == 0 {
		g.World.Run.Gold += g.tun.Economy.BonusGold
		return
	}

	tool := missing[g.Rng.Intn(len(missing))]
	d.GiveTool(tool)
	if tool == domain.ToolGoggles {
		systems.RevealSurroundings(d, g.World.Fog, g.tun)
	}
	g.emit(domain.Event{Type: domain.EventToolGranted, Pos: d.Pos, DwarfID: d.ID, Tool: tool, Level: d.Level})
}

// hatchDwarf создает гнома 1 уровня рядом с родителем (или в той же клетке)
func (g *Game) hatchDwarf(parent *domain.Dwarf, now time.Duration) *domain.Dwarf {
	w := g.World
	spot := parent.Pos
	for _, n := range parent.Pos.Neighbors4() {
		if w.Grid.Is(n, domain.TileEmpty) {
			spot = n
			break
		}
	}

	child := domain.NewDwarf(spot, 1, now)
	systems.PickRandomDirection(child, g.Rng, domain.Position{})
	systems.RevealSurroundings(child, w.Fog, g.tun)
	w.Run.UpgradePointer = 1

	// Оба разбегаются в случайные стороны
	systems.PickRandomDirection(parent, g.Rng, domain.Position{})
	systems.PickRandomDirection(child, g.Rng, domain.Position{})

	g.emit(domain.Event{Type: domain.EventDwarfSpawned, Pos: spot, DwarfID: child.ID, Level: 1})
	return child
}

// caveIn с шансом засыпает 2-3 пустые клетки вокруг землей
func (g *Game) caveIn(center domain.Position) {
	w := g.World
	if g.Rng.Float64() >= g.tun.Economy.CaveInChance {
		return
	}

	var empty []domain.Position
	for _, n := range center.Neighbors8() {
		if w.Grid.Is(n, domain.TileEmpty) {
			empty = append(empty, n)
		}
	}
	count := 2 + g.Rng.Intn(2)
	g.Rng.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })

	filled := min(count, len(empty))
	for _, p := range empty[:filled] {
		w.Grid.Set(p, domain.TileDirt)
		w.Lifetime.Set(p, 0)
	}
	g.emit(domain.Event{Type: domain.EventCaveIn, Pos: center, Count: filled})
}
