package mine

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/systems"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
	"github.com/sirupsen/logrus"
)

// attemptsPerCell ограничивает выборку с отбраковкой на маленьких картах
const attemptsPerCell = 64

// LevelBuilder предоставляет fluent API для создания уровней шахты.
// Порядок шагов фиксирован: от него зависит последовательность случайных чисел.
type LevelBuilder struct {
	level  int
	params Params
	tun    *tuning.Tuning
	rng    utils.Rand
	now    time.Duration

	grid   *domain.Grid
	spawn  domain.Position
	chests int
}

// NewLevel создает builder для уровня
func NewLevel(level int, rng utils.Rand, tun *tuning.Tuning) *LevelBuilder {
	return &LevelBuilder{
		level:  max(level, 1),
		params: ParamsFor(level, tun),
		tun:    tun,
		rng:    rng,
	}
}

// WithSize переопределяет размер карты (тесты, маленькие карты)
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.params.Width = width
	b.params.Height = height
	return b
}

// WithNow задает момент создания: от него гномы отсчитывают задержку хода
func (b *LevelBuilder) WithNow(now time.Duration) *LevelBuilder {
	b.now = now
	return b
}

// Params возвращает итоговые параметры уровня
func (b *LevelBuilder) Params() Params {
	return b.params
}

// Build генерирует мир уровня целиком
func (b *LevelBuilder) Build() *domain.World {
	genLogger := logger.Log.WithFields(logrus.Fields{
		"component": "mine_generator",
		"level":     b.level,
		"width":     b.params.Width,
		"height":    b.params.Height,
	})

	b.grid = domain.NewGrid(b.params.Width, b.params.Height, domain.TileDirt)
	b.spawn = domain.Position{X: b.params.Width / 2, Y: b.params.Height / 2}

	// 1. Лут вне стартового окна
	b.scatterLoot()
	// 2. Твердая земля дальше радиуса
	b.hardenFarDirt()
	// 3. Трещины
	b.crackDirt()
	// 4. Сундуки
	b.placeChests(genLogger)
	// 5. Карманы воды и лавы
	b.placePockets(domain.TileWaterSource, b.params.WaterPockets, genLogger)
	b.placePockets(domain.TileLavaSource, b.params.LavaPockets, genLogger)
	// Карманы могли затереть сундуки: цель уровня - то, что реально осталось
	if left := b.grid.Count(domain.TileChest); left != b.chests {
		genLogger.WithField("lost", b.chests-left).Debug("Chests flooded by pockets")
		b.chests = left
	}
	// Уровень без сундуков не выиграть
	if b.chests == 0 {
		b.ensureChest(genLogger)
	}

	maps := domain.NewLevelMaps(
		b.grid,
		domain.NewFogGrid(b.params.Width, b.params.Height),
		domain.NewLifetimeGrid(b.params.Width, b.params.Height),
	)
	world := domain.NewWorld(b.level, maps, b.spawn)
	world.Run.TotalChests = b.chests
	world.LastSpawn = b.now
	world.LastFluid = b.now

	// 6. Два стартовых гнома в двух клетках друг от друга
	for _, p := range []domain.Position{b.spawn, b.spawn.Shift(2, 0)} {
		d := domain.NewDwarf(p, 1, b.now)
		systems.PickRandomDirection(d, b.rng, domain.Position{})
		world.AddDwarf(d)
	}
	for _, d := range world.Dwarves {
		systems.RevealSurroundings(d, world.Fog, b.tun)
	}

	genLogger.WithField("chests", b.chests).Debug("Level generated")
	return world
}

func (b *LevelBuilder) scatterLoot() {
	s := b.tun.Seeding
	window := b.tun.Map.SpawnClearRadius
	dwarfAt := s.DwarfLootChance
	upgradeAt := dwarfAt + s.UpgradeLootChance
	presentAt := upgradeAt + s.PresentChance
	goldAt := presentAt + s.GoldChance

	for y := 0; y < b.grid.Height; y++ {
		for x := 0; x < b.grid.Width; x++ {
			if (domain.Position{X: x, Y: y}).ChebyshevTo(b.spawn) <= window {
				continue
			}
			r := b.rng.Float64()
			var tile domain.Tile
			switch {
			case r < dwarfAt:
				tile = domain.TileDwarfLoot
			case r < upgradeAt:
				tile = domain.TileUpgradeLoot
			case r < presentAt:
				tile = domain.TilePresent
			case r < goldAt:
				tile = domain.TileGold
			default:
				continue
			}
			b.grid.Set(domain.Position{X: x, Y: y}, tile)
		}
	}
}

func (b *LevelBuilder) hardenFarDirt() {
	radius := float64(b.params.HardDirtRadius)
	for y := 0; y < b.grid.Height; y++ {
		for x := 0; x < b.grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			if b.grid.Is(p, domain.TileDirt) && p.DistanceTo(b.spawn) > radius {
				b.grid.Set(p, domain.TileHardDirt)
			}
		}
	}
}

func (b *LevelBuilder) crackDirt() {
	chance := b.tun.Seeding.CrackedDirtChance
	for y := 0; y < b.grid.Height; y++ {
		for x := 0; x < b.grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			tile, _ := b.grid.Get(p)
			if tile != domain.TileDirt && tile != domain.TileHardDirt {
				continue
			}
			if b.rng.Float64() >= chance {
				continue
			}
			// Трещина сохраняет проходимость исходной земли
			if tile == domain.TileHardDirt {
				b.grid.Set(p, domain.TileCrackedHardDirt)
			} else {
				b.grid.Set(p, domain.TileCrackedDirt)
			}
		}
	}
}

func (b *LevelBuilder) placeChests(genLogger *logrus.Entry) {
	budget := b.grid.Width * b.grid.Height * attemptsPerCell
	for b.chests < b.params.Chests && budget > 0 {
		budget--
		p := b.randomCell()
		tile, _ := b.grid.Get(p)
		if tile.IsHard() || tile == domain.TileCrackedDirt {
			b.grid.Set(p, domain.TileChest)
			b.chests++
		}
	}
	if b.chests < b.params.Chests {
		genLogger.WithFields(logrus.Fields{
			"wanted": b.params.Chests,
			"placed": b.chests,
		}).Warn("⚠️ Not enough hard dirt for chests, level target lowered")
	}
}

// ensureChest ставит один сундук без RNG: на самую дальнюю от спавна землю,
// при равенстве - первую по строкам
func (b *LevelBuilder) ensureChest(genLogger *logrus.Entry) {
	best, bestDist := domain.Position{}, -1.0
	for y := 0; y < b.grid.Height; y++ {
		for x := 0; x < b.grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			tile, _ := b.grid.Get(p)
			if !tile.IsDiggable() {
				continue
			}
			if dist := p.DistanceTo(b.spawn); dist > bestDist {
				best, bestDist = p, dist
			}
		}
	}
	if bestDist < 0 {
		genLogger.Warn("⚠️ No dirt left for a chest")
		return
	}
	b.grid.Set(best, domain.TileChest)
	b.chests = 1
	genLogger.WithField("pos", best).Debug("Fallback chest placed")
}

func (b *LevelBuilder) placePockets(source domain.Tile, count int, genLogger *logrus.Entry) {
	r := b.params.HardDirtRadius
	budget := b.grid.Width * b.grid.Height * attemptsPerCell
	placed := 0
	for placed < count && budget > 0 {
		budget--
		p := b.randomCell()
		tile, _ := b.grid.Get(p)
		if !tile.IsDiggable() {
			continue
		}
		if p.ChebyshevTo(b.spawn) <= r {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				b.grid.Set(p.Shift(dx, dy), source)
			}
		}
		placed++
	}
	if placed < count {
		genLogger.WithFields(logrus.Fields{
			"source": source.String(),
			"wanted": count,
			"placed": placed,
		}).Warn("⚠️ Not enough room for fluid pockets")
	}
}

func (b *LevelBuilder) randomCell() domain.Position {
	return domain.Position{X: b.rng.Intn(b.grid.Width), Y: b.rng.Intn(b.grid.Height)}
}
