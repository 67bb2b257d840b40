package systems

import (
	"testing"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 500 * time.Millisecond

// assertConnectivity: жидкость, достижимая от источника того же типа, живет вечно,
// остальная жидкость - с конечным таймером.
func assertConnectivity(t *testing.T, g *domain.Grid, life *domain.LifetimeGrid) {
	t.Helper()
	reach := markConnected(g)
	for i, tile := range g.Tiles {
		if !tile.IsFluid() {
			continue
		}
		p := domain.Position{X: i % g.Width, Y: i / g.Width}
		v := life.Expiry[i]
		if reach[i] {
			assert.Equal(t, domain.LifetimeInfinite, v, "connected fluid at %v", p)
		} else {
			assert.True(t, v > 0 && v != domain.LifetimeInfinite, "orphan fluid at %v has lifetime %v", p, v)
		}
	}
}

func TestStepFluids_ChannelFillsThenEvaporates(t *testing.T) {
	tun := defaultTuning()
	g := gridFromRows(t,
		"#S#",
		"#.#",
		"#.#",
		"#.#",
		"#.#",
		"#.#",
		"###",
	)
	life := domain.NewLifetimeGrid(g.Width, g.Height)
	now := time.Duration(0)

	// 1. Пять шагов: канал заполняется по клетке за шаг
	for i := 1; i <= 5; i++ {
		now += step
		res := StepFluids(g, life, now, tun)
		if i == 1 {
			require.Len(t, res.Warnings, 1)
			assert.Equal(t, pos(1, 1), res.Warnings[0].Pos)
			assert.Equal(t, now+tun.WarningDuration(), res.Warnings[0].ExpiresAt)
		} else {
			assert.Empty(t, res.Warnings)
		}
		g, life = res.Grid, res.Lifetime
		assertConnectivity(t, g, life)
	}
	for y := 1; y <= 5; y++ {
		assert.Equal(t, domain.TileWater, mustTile(t, g, pos(1, y)), "row %d", y)
		assert.Equal(t, domain.LifetimeInfinite, life.Get(pos(1, y)), "row %d", y)
	}

	// 2. Запечатываем источник стеной: на следующем шаге начинается отсчет
	g.Set(pos(1, 0), domain.TileWall)
	life.Set(pos(1, 0), 0)
	now += step
	res := StepFluids(g, life, now, tun)
	g, life = res.Grid, res.Lifetime
	sealedAt := now
	for y := 1; y <= 5; y++ {
		assert.Equal(t, domain.TileWater, mustTile(t, g, pos(1, y)))
		assert.Equal(t, sealedAt+tun.FluidLifetime(), life.Get(pos(1, y)))
	}
	assertConnectivity(t, g, life)

	// 3. Ровно ceil(lifetime / delay) шагов до полного испарения
	steps := int((tun.FluidLifetime() + step - 1) / step)
	for i := 1; i <= steps; i++ {
		now += step
		res = StepFluids(g, life, now, tun)
		g, life = res.Grid, res.Lifetime
		if i < steps {
			assert.Equal(t, 5, g.Count(domain.TileWater), "still wet after %d steps", i)
		}
		assertConnectivity(t, g, life)
	}
	assert.Equal(t, 0, g.Count(domain.TileWater))
	for y := 1; y <= 5; y++ {
		assert.Equal(t, time.Duration(0), life.Get(pos(1, y)))
	}
}

func TestStepFluids_IsPure(t *testing.T) {
	tun := defaultTuning()
	g := gridFromRows(t,
		"...",
		".S.",
		"...",
	)
	life := domain.NewLifetimeGrid(3, 3)
	before := g.Clone()

	res := StepFluids(g, life, step, tun)

	assert.Equal(t, before.Tiles, g.Tiles, "input grid must not change")
	assert.Equal(t, 4, res.Grid.Count(domain.TileWater))
	assert.Len(t, res.Warnings, 4)
	for _, e := range life.Expiry {
		assert.Zero(t, e)
	}
}

func TestStepFluids_EvaporatesExactlyOnTime(t *testing.T) {
	tun := defaultTuning()
	g := gridFromRows(t,
		"#w#",
		"###",
	)
	life := domain.NewLifetimeGrid(3, 2)
	life.Set(pos(1, 0), domain.LifetimeInfinite)

	start := 10 * time.Second
	res := StepFluids(g, life, start, tun)
	require.Equal(t, start+tun.FluidLifetime(), res.Lifetime.Get(pos(1, 0)))

	// За миг до истечения вода еще есть, в момент истечения - уже нет
	early := StepFluids(res.Grid, res.Lifetime, start+tun.FluidLifetime()-time.Millisecond, tun)
	assert.Equal(t, domain.TileWater, mustTile(t, early.Grid, pos(1, 0)))

	onTime := StepFluids(res.Grid, res.Lifetime, start+tun.FluidLifetime(), tun)
	assert.Equal(t, domain.TileEmpty, mustTile(t, onTime.Grid, pos(1, 0)))
	assert.Zero(t, onTime.Lifetime.Get(pos(1, 0)))
}

func TestStepFluids_OrphanFlowsDownCarryingTimer(t *testing.T) {
	tun := defaultTuning()
	g := gridFromRows(t,
		"l",
		".",
		".",
		"#",
	)
	life := domain.NewLifetimeGrid(1, 4)
	expiry := 5 * time.Second
	life.Set(pos(0, 0), expiry)

	res := StepFluids(g, life, time.Second, tun)
	assert.Equal(t, domain.TileEmpty, mustTile(t, res.Grid, pos(0, 0)))
	assert.Zero(t, res.Lifetime.Get(pos(0, 0)))
	assert.Equal(t, domain.TileLava, mustTile(t, res.Grid, pos(0, 1)))
	assert.Equal(t, expiry, res.Lifetime.Get(pos(0, 1)))
	assert.Equal(t, domain.TileEmpty, mustTile(t, res.Grid, pos(0, 2)), "one cell per step")
}

func TestStepFluids_ConnectedSpreadsSidewaysWhenFloorIsSolid(t *testing.T) {
	tun := defaultTuning()
	g := gridFromRows(t,
		"#S#",
		"...",
		"###",
	)
	life := domain.NewLifetimeGrid(3, 3)

	res := StepFluids(g, life, step, tun)
	assert.Equal(t, domain.TileWater, mustTile(t, res.Grid, pos(1, 1)))
	assert.Equal(t, domain.TileEmpty, mustTile(t, res.Grid, pos(0, 1)))

	res = StepFluids(res.Grid, res.Lifetime, 2*step, tun)
	assert.Equal(t, domain.TileWater, mustTile(t, res.Grid, pos(0, 1)))
	assert.Equal(t, domain.TileWater, mustTile(t, res.Grid, pos(2, 1)))
	assertConnectivity(t, res.Grid, res.Lifetime)
}

func TestStepFluids_ConnectivityIsPerFluidType(t *testing.T) {
	tun := defaultTuning()
	g := gridFromRows(t,
		"Sl#",
		"###",
	)
	life := domain.NewLifetimeGrid(3, 2)

	res := StepFluids(g, life, step, tun)
	assert.Equal(t, domain.TileLava, mustTile(t, res.Grid, pos(1, 0)), "lava is not converted")
	assert.Equal(t, step+tun.FluidLifetime(), res.Lifetime.Get(pos(1, 0)), "lava is not fed by a water source")
	assertConnectivity(t, res.Grid, res.Lifetime)
}

func mustTile(t *testing.T, g *domain.Grid, p domain.Position) domain.Tile {
	t.Helper()
	tile, ok := g.Get(p)
	require.True(t, ok, "position %v out of bounds", p)
	return tile
}
