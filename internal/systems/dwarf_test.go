package systems

import (
	"testing"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	up    = domain.Position{X: 0, Y: -1}
	down  = domain.Position{X: 0, Y: 1}
	left  = domain.Position{X: -1, Y: 0}
	right = domain.Position{X: 1, Y: 0}
)

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func newEnv(t *testing.T, rows ...string) Env {
	g := gridFromRows(t, rows...)
	return Env{
		Grid:   g,
		Fog:    domain.NewFogGrid(g.Width, g.Height),
		Arrows: domain.NewArrowSet(),
		Rng:    &utils.ScriptedRand{},
		Tuning: defaultTuning(),
	}
}

func addDwarf(env *Env, p domain.Position, level int, dir domain.Position) *domain.Dwarf {
	d := domain.NewDwarf(p, level, 0)
	d.Dir = dir
	env.Dwarves = append(env.Dwarves, d)
	return d
}

func TestCalculateMove(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		level   int
		pickaxe bool
		moved   bool
		killed  bool
		blocked BlockReason
	}{
		{"empty", "..", 1, false, true, false, NotBlocked},
		{"dirt", ".#", 1, false, true, false, NotBlocked},
		{"out of bounds", ".", 1, false, false, false, BlockedBounds},
		{"wall", ".X", 1, false, false, false, BlockedSolid},
		{"water source", ".S", 5, false, false, false, BlockedSolid},
		{"lava source", ".L", 5, false, false, false, BlockedSolid},
		{"lava", ".l", 5, false, false, true, NotBlocked},
		{"hard dirt low level", ".H", 2, false, false, false, BlockedHardDirt},
		{"hard dirt high level", ".H", 3, false, true, false, NotBlocked},
		{"hard dirt with pickaxe", ".H", 1, true, true, false, NotBlocked},
		{"cracked hard dirt low level", ".K", 2, false, false, false, BlockedHardDirt},
		{"cracked hard dirt high level", ".K", 3, false, true, false, NotBlocked},
		{"cracked hard dirt with pickaxe", ".K", 1, true, true, false, NotBlocked},
		{"cracked dirt", ".C", 1, false, true, false, NotBlocked},
		{"water", ".w", 1, false, true, false, NotBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t, tt.row)
			d := addDwarf(&env, pos(0, 0), tt.level, right)
			if tt.pickaxe {
				d.GiveTool(domain.ToolPickaxe)
			}

			res := CalculateMove(d, env.Grid, env.Dwarves, env.Tuning)
			assert.Equal(t, tt.moved, res.HasMoved)
			assert.Equal(t, tt.killed, res.Killed)
			assert.Equal(t, tt.blocked, res.BlockedBy)
			assert.Equal(t, pos(0, 0), d.Pos, "CalculateMove must not move the dwarf")
		})
	}
}

func TestCalculateMove_DwarfCollision(t *testing.T) {
	env := newEnv(t, "...")
	d := addDwarf(&env, pos(0, 0), 1, right)
	other := addDwarf(&env, pos(1, 0), 2, up)

	res := CalculateMove(d, env.Grid, env.Dwarves, env.Tuning)
	assert.Equal(t, BlockedDwarf, res.BlockedBy)

	other.SetLevel(1)
	res = CalculateMove(d, env.Grid, env.Dwarves, env.Tuning)
	assert.True(t, res.HasMoved, "same level dwarves may share a cell")

	other.SetLevel(2)
	other.Kill()
	res = CalculateMove(d, env.Grid, env.Dwarves, env.Tuning)
	assert.True(t, res.HasMoved, "dead dwarves do not block")
}

func TestUpdateDwarf_MoveGate(t *testing.T) {
	env := newEnv(t,
		"....",
		"....",
	)
	d := addDwarf(&env, pos(0, 0), 1, right)

	assert.Equal(t, domain.RewardNone, UpdateDwarf(d, env, ms(1000)))
	assert.Equal(t, pos(0, 0), d.Pos, "delay must be strictly exceeded")

	UpdateDwarf(d, env, ms(1001))
	assert.Equal(t, pos(1, 0), d.Pos)
	assert.Equal(t, ms(1001), d.LastMove)
	assert.True(t, env.Fog.IsRevealed(pos(3, 1)), "moving reveals surroundings")
}

func TestUpdateDwarf_FasterAtHigherLevel(t *testing.T) {
	env := newEnv(t, "....")
	d := addDwarf(&env, pos(0, 0), 5, right)

	UpdateDwarf(d, env, ms(201))
	assert.Equal(t, pos(1, 0), d.Pos)
}

func TestUpdateDwarf_PickaxeHalvesDelayOnSoftDirtOnly(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		moveAt time.Duration
	}{
		{"dirt", ".#", ms(501)},
		{"cracked dirt", ".C", ms(501)},
		{"hard dirt", ".H", ms(1001)},
		{"cracked hard dirt", ".K", ms(1001)},
		{"empty", "..", ms(1001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t, tt.row)
			d := addDwarf(&env, pos(0, 0), 1, right)
			d.GiveTool(domain.ToolPickaxe)

			UpdateDwarf(d, env, tt.moveAt-time.Millisecond)
			assert.Equal(t, pos(0, 0), d.Pos)

			UpdateDwarf(d, env, tt.moveAt)
			assert.Equal(t, pos(1, 0), d.Pos)
			assert.Equal(t, domain.TileEmpty, mustTile(t, env.Grid, pos(1, 0)), "dwarf digs through")
		})
	}
}

func TestUpdateDwarf_ArrowBeatsReward(t *testing.T) {
	env := newEnv(t,
		"...",
		"..g",
		"...",
	)
	d := addDwarf(&env, pos(1, 1), 1, left)
	env.Arrows.PlaceOrCycle(pos(1, 1)) // вверх

	UpdateDwarf(d, env, ms(1001))
	assert.Equal(t, pos(1, 0), d.Pos)
	assert.Equal(t, up, d.Dir)
	assert.Equal(t, domain.TileGold, mustTile(t, env.Grid, pos(2, 1)))
}

func TestUpdateDwarf_TurnsTowardReward(t *testing.T) {
	env := newEnv(t,
		"...",
		"g.c",
		"...",
	)
	d := addDwarf(&env, pos(1, 1), 1, right)

	// Порядок обхода: вверх, вниз, влево, вправо - золото слева находится раньше сундука
	reward := UpdateDwarf(d, env, ms(1001))
	assert.Equal(t, domain.RewardGold, reward)
	assert.Equal(t, pos(0, 1), d.Pos)
	assert.Equal(t, domain.TileEmpty, mustTile(t, env.Grid, pos(0, 1)))
}

func TestUpdateDwarf_TurnsTowardSameLevelNeighbour(t *testing.T) {
	env := newEnv(t,
		"...",
		"...",
		"...",
	)
	d := addDwarf(&env, pos(1, 1), 2, right)
	addDwarf(&env, pos(2, 0), 2, up) // диагональ не считается
	addDwarf(&env, pos(1, 0), 1, up) // другой уровень
	mate := addDwarf(&env, pos(1, 2), 2, up)

	UpdateDwarf(d, env, ms(801))
	assert.Equal(t, down, d.Dir)
	assert.Equal(t, mate.Pos, d.Pos, "same level dwarves end up sharing a cell")
}

func TestUpdateDwarf_BlockedPicksRandomExcludingReverse(t *testing.T) {
	env := newEnv(t,
		"...",
		"...",
		"...",
	)
	d := addDwarf(&env, pos(0, 1), 1, left)
	// Без разворота вправо варианты: вверх, вниз, влево. Индекс 1 -> вниз.
	env.Rng = &utils.ScriptedRand{Ints: []int{1}}

	UpdateDwarf(d, env, ms(1001))
	assert.Equal(t, down, d.Dir)
	assert.Equal(t, pos(0, 2), d.Pos)
}

func TestPickRandomDirection_NeverReverses(t *testing.T) {
	d := domain.NewDwarf(pos(0, 0), 1, 0)
	for i := 0; i < 3; i++ {
		d.Dir = right
		PickRandomDirection(d, &utils.ScriptedRand{Ints: []int{i}}, left)
		assert.NotEqual(t, left, d.Dir)
	}

	// Нулевое направление ничего не исключает
	d.Dir = domain.Position{}
	PickRandomDirection(d, &utils.ScriptedRand{Ints: []int{3}}, domain.Position{})
	assert.Equal(t, right, d.Dir)
}

func TestUpdateDwarf_LavaKills(t *testing.T) {
	env := newEnv(t, ".l")
	d := addDwarf(&env, pos(0, 0), 5, right)

	reward := UpdateDwarf(d, env, ms(201))
	assert.Equal(t, domain.RewardNone, reward)
	assert.False(t, d.Alive)
	assert.Equal(t, pos(0, 0), d.Pos)
	assert.Equal(t, domain.TileLava, mustTile(t, env.Grid, pos(1, 0)))
}

func TestUpdateDwarf_Drowning(t *testing.T) {
	tests := []struct {
		name  string
		ale   bool
		limit time.Duration
	}{
		{"plain", false, ms(5000)},
		{"with ale", true, ms(15000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t,
				"www",
				"www",
			)
			d := addDwarf(&env, pos(1, 0), 1, domain.Position{})
			if tt.ale {
				d.GiveTool(domain.ToolAle)
			}

			UpdateDwarf(d, env, 0)
			require.True(t, d.InWater)

			UpdateDwarf(d, env, tt.limit)
			assert.True(t, d.Alive, "tolerance must be exceeded, not reached")

			UpdateDwarf(d, env, tt.limit+time.Millisecond)
			assert.False(t, d.Alive)
		})
	}
}

func TestUpdateDwarf_LeavingWaterResetsTimer(t *testing.T) {
	env := newEnv(t, "w.")
	d := addDwarf(&env, pos(0, 0), 1, domain.Position{})

	UpdateDwarf(d, env, ms(100))
	require.True(t, d.InWater)

	env.Grid.Set(pos(0, 0), domain.TileEmpty)
	UpdateDwarf(d, env, ms(200))
	assert.False(t, d.InWater)
	assert.Zero(t, d.DrownStart)
}

func TestUpdateDwarf_IdleStillConsumesWindow(t *testing.T) {
	env := newEnv(t, "...")
	d := addDwarf(&env, pos(1, 0), 1, domain.Position{})

	UpdateDwarf(d, env, ms(1500))
	assert.Equal(t, pos(1, 0), d.Pos)
	assert.Equal(t, ms(1500), d.LastMove)
}

func TestUpdateDwarf_CrackedDirtYieldsSignal(t *testing.T) {
	env := newEnv(t, ".C")
	d := addDwarf(&env, pos(0, 0), 1, right)

	assert.Equal(t, domain.RewardCrackedDirt, UpdateDwarf(d, env, ms(1001)))
	assert.Equal(t, domain.TileEmpty, mustTile(t, env.Grid, pos(1, 0)))
}

func TestUpdateDwarf_CrackedHardDirtKeepsHardRule(t *testing.T) {
	env := newEnv(t, ".K")
	d := addDwarf(&env, pos(0, 0), 1, right)
	// Единственный выход закрыт - гном разворачивается, но трещину не проходит
	env.Rng = &utils.ScriptedRand{Ints: []int{0}}

	assert.True(t, IsAheadBlocked(d, pos(1, 0), env.Grid, env.Tuning))
	assert.Equal(t, domain.RewardNone, UpdateDwarf(d, env, ms(1001)))
	assert.Equal(t, pos(0, 0), d.Pos)
	assert.Equal(t, domain.TileCrackedHardDirt, mustTile(t, env.Grid, pos(1, 0)))

	d.SetLevel(3)
	d.Dir = right
	assert.False(t, IsAheadBlocked(d, pos(1, 0), env.Grid, env.Tuning))
	assert.Equal(t, domain.RewardCrackedDirt, UpdateDwarf(d, env, ms(2002)))
	assert.Equal(t, pos(1, 0), d.Pos)
	assert.Equal(t, domain.TileEmpty, mustTile(t, env.Grid, pos(1, 0)))
}

func TestRevealSurroundings_GogglesDoubleRadius(t *testing.T) {
	tun := defaultTuning()
	fog := domain.NewFogGrid(11, 11)
	d := domain.NewDwarf(pos(5, 5), 1, 0)

	RevealSurroundings(d, fog, tun)
	assert.Equal(t, 25, fog.RevealedCount())

	d.GiveTool(domain.ToolGoggles)
	RevealSurroundings(d, fog, tun)
	assert.Equal(t, 81, fog.RevealedCount())
}
