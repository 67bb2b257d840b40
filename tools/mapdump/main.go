package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/mine"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
)

func main() {
	if len(os.Args) < 4 {
		printHelp()
		return
	}

	seed, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Printf("Invalid seed: %v\n", err)
		return
	}
	level, err := strconv.Atoi(os.Args[3])
	if err != nil || level < 1 {
		fmt.Printf("Invalid level: %q\n", os.Args[3])
		return
	}

	tun := tuning.Default()
	if len(os.Args) > 4 {
		if tun, err = tuning.Load(os.Args[4]); err != nil {
			fmt.Printf("Invalid tuning: %v\n", err)
			return
		}
	}

	// Тот же вывод зерна, что и у игры (первая попытка уровня)
	rng := utils.NewRand(utils.LevelSeed(seed, level, 0))
	builder := mine.NewLevel(level, rng, &tun)
	world := builder.Build()

	switch os.Args[1] {
	case "render":
		fmt.Print(render(world))
	case "stats":
		fmt.Print(stats(world, builder.Params()))
	default:
		printHelp()
	}
}

var glyphs = map[domain.Tile]byte{
	domain.TileEmpty:           ' ',
	domain.TileDirt:            '.',
	domain.TileHardDirt:        ':',
	domain.TileCrackedDirt:     '%',
	domain.TileCrackedHardDirt: ';',
	domain.TileWall:            '#',
	domain.TileGold:            '$',
	domain.TilePresent:         '?',
	domain.TileChest:           'C',
	domain.TileUpgradeLoot:     '*',
	domain.TileDwarfLoot:       '&',
	domain.TileWater:           'w',
	domain.TileLava:            'l',
	domain.TileWaterSource:     'W',
	domain.TileLavaSource:      'L',
}

// render рисует карту целиком, без тумана. Гномы - цифрой уровня.
func render(w *domain.World) string {
	var sb strings.Builder
	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			if d := w.DwarfAt(p); d != nil {
				sb.WriteByte(byte('0' + d.Level))
				continue
			}
			tile, _ := w.Grid.Get(p)
			sb.WriteByte(glyphs[tile])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func stats(w *domain.World, params mine.Params) string {
	counts := make(map[string]int)
	for _, t := range w.Grid.Tiles {
		counts[t.String()]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "level %d, %dx%d, spawn %d,%d, chests %d/%d, revealed %d\n",
		w.Level, w.Grid.Width, w.Grid.Height, w.Spawn.X, w.Spawn.Y,
		w.Run.TotalChests, params.Chests, w.Fog.RevealedCount())
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-18s %d\n", name, counts[name])
	}
	return sb.String()
}

func printHelp() {
	fmt.Println(`Map Dump - просмотр сгенерированной шахты
Commands:
  render <seed> <level> [tuning.yaml]  - карта целиком, без тумана
  stats <seed> <level> [tuning.yaml]   - количество клеток каждого типа`)
}
