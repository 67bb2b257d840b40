package systems

import (
	"testing"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
)

// gridFromRows строит карту из строк:
// '.' пусто, '#' земля, 'H' твердая земля, 'C' треснувшая, 'K' треснувшая твердая, 'X' стена,
// 'w' вода, 'l' лава, 'S' источник воды, 'L' источник лавы,
// 'g' золото, 'p' подарок, 'c' сундук, 'u' звезда, 'd' капсула гнома.
func gridFromRows(t *testing.T, rows ...string) *domain.Grid {
	t.Helper()
	g := domain.NewGrid(len(rows[0]), len(rows), domain.TileEmpty)
	for y, row := range rows {
		if len(row) != g.Width {
			t.Fatalf("row %d has width %d, want %d", y, len(row), g.Width)
		}
		for x, ch := range row {
			tile, ok := tileRunes[ch]
			if !ok {
				t.Fatalf("unknown tile rune %q", ch)
			}
			g.Set(domain.Position{X: x, Y: y}, tile)
		}
	}
	return g
}

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

func defaultTuning() *tuning.Tuning {
	tun := tuning.Default()
	return &tun
}

func pos(x, y int) domain.Position {
	return domain.Position{X: x, Y: y}
}
