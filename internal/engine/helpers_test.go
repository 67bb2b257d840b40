package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/notify"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
	"github.com/stretchr/testify/require"
)

var tileRunes = map[rune]domain.Tile{
	'.': domain.TileEmpty,
	'#': domain.TileDirt,
	'H': domain.TileHardDirt,
	'C': domain.TileCrackedDirt,
	'K': domain.TileCrackedHardDirt,
	'X': domain.TileWall,
	'w': domain.TileWater,
	'l': domain.TileLava,
	'S': domain.TileWaterSource,
	'L': domain.TileLavaSource,
	'g': domain.TileGold,
	'p': domain.TilePresent,
	'c': domain.TileChest,
	'u': domain.TileUpgradeLoot,
	'd': domain.TileDwarfLoot,
}

// newTestGame собирает игру вокруг карты, нарисованной строками.
// Сундуки на карте становятся TotalChests, туман закрыт, гномов нет.
func newTestGame(t *testing.T, rng utils.Rand, rows ...string) *Game {
	t.Helper()
	grid := domain.NewGrid(len(rows[0]), len(rows), domain.TileEmpty)
	for y, row := range rows {
		require.Len(t, row, grid.Width, "row %d", y)
		for x, ch := range row {
			tile, ok := tileRunes[ch]
			require.True(t, ok, "unknown tile rune %q", ch)
			grid.Set(domain.Position{X: x, Y: y}, tile)
		}
	}

	maps := domain.NewLevelMaps(grid, domain.NewFogGrid(grid.Width, grid.Height), domain.NewLifetimeGrid(grid.Width, grid.Height))
	world := domain.NewWorld(1, maps, domain.Position{})
	world.Run.TotalChests = grid.Count(domain.TileChest)

	g := newGame(Config{Seed: 7, StartLevel: 1, Tuning: tuning.Default()})
	g.install(world, rng)
	return g
}

func addDwarf(g *Game, x, y, level int) *domain.Dwarf {
	d := domain.NewDwarf(domain.Position{X: x, Y: y}, level, 0)
	g.World.AddDwarf(d)
	return d
}

func command(t *testing.T, action domain.ActionType, payload any) domain.Command {
	t.Helper()
	cmd := domain.Command{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		cmd.Payload = raw
	}
	return cmd
}

func eventTypes(evs []domain.Event) []domain.EventType {
	out := make([]domain.EventType, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Type)
	}
	return out
}

func drain(ch <-chan domain.Event) []domain.EventType {
	return eventTypes(drainEvents(ch))
}

func drainEvents(ch <-chan domain.Event) []domain.Event {
	return notify.Drain(ch)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func at(x, y int) domain.Position {
	return domain.Position{X: x, Y: y}
}
