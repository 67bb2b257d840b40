package domain

import (
	"fmt"
	"time"
)

// Grid - плоский буфер клеток шахты. Индекс: y*Width + x
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewGrid создает карту, залитую одним типом клетки.
// Неположительные размеры - ошибка программиста.
func NewGrid(width, height int, fill Tile) *Grid {
	mustPositive(width, height)
	g := &Grid{Width: width, Height: height, Tiles: make([]Tile, width*height)}
	if fill != TileEmpty {
		for i := range g.Tiles {
			g.Tiles[i] = fill
		}
	}
	return g
}

func (g *Grid) GetIndex(x, y int) int {
	return y*g.Width + x
}

func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Get возвращает клетку. За пределами карты - (TileEmpty, false).
func (g *Grid) Get(p Position) (Tile, bool) {
	if !g.InBounds(p) {
		return TileEmpty, false
	}
	return g.Tiles[g.GetIndex(p.X, p.Y)], true
}

// Is - удобная проверка "клетка в пределах карты и равна t"
func (g *Grid) Is(p Position, t Tile) bool {
	got, ok := g.Get(p)
	return ok && got == t
}

// Set игнорирует координаты за пределами карты
func (g *Grid) Set(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.Tiles[g.GetIndex(p.X, p.Y)] = t
}

// Clone - глубокая копия (для двухбуферной схемы)
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, Tiles: make([]Tile, len(g.Tiles))}
	copy(out.Tiles, g.Tiles)
	return out
}

// Count считает клетки заданного типа
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.Tiles {
		if v == t {
			n++
		}
	}
	return n
}

// FogGrid - туман войны. Открытая клетка больше никогда не скрывается.
type FogGrid struct {
	Width    int
	Height   int
	Revealed []bool
}

func NewFogGrid(width, height int) *FogGrid {
	mustPositive(width, height)
	return &FogGrid{Width: width, Height: height, Revealed: make([]bool, width*height)}
}

func (f *FogGrid) IsRevealed(p Position) bool {
	if p.X < 0 || p.X >= f.Width || p.Y < 0 || p.Y >= f.Height {
		return false
	}
	return f.Revealed[p.Y*f.Width+p.X]
}

// RevealSquare открывает квадрат со стороной 2*radius+1 (обрезается по краям карты)
func (f *FogGrid) RevealSquare(center Position, radius int) {
	for y := max(0, center.Y-radius); y <= min(f.Height-1, center.Y+radius); y++ {
		for x := max(0, center.X-radius); x <= min(f.Width-1, center.X+radius); x++ {
			f.Revealed[y*f.Width+x] = true
		}
	}
}

// RevealedCount - сколько клеток уже открыто
func (f *FogGrid) RevealedCount() int {
	n := 0
	for _, r := range f.Revealed {
		if r {
			n++
		}
	}
	return n
}

// Clone - независимая копия флагов (снимки для рендера)
func (f *FogGrid) Clone() *FogGrid {
	out := &FogGrid{Width: f.Width, Height: f.Height, Revealed: make([]bool, len(f.Revealed))}
	copy(out.Revealed, f.Revealed)
	return out
}

// LifetimeGrid хранит момент испарения жидкости в каждой клетке.
// 0 - таймера нет, LifetimeInfinite - жидкость связана с источником.
type LifetimeGrid struct {
	Width  int
	Height int
	Expiry []time.Duration
}

func NewLifetimeGrid(width, height int) *LifetimeGrid {
	mustPositive(width, height)
	return &LifetimeGrid{Width: width, Height: height, Expiry: make([]time.Duration, width*height)}
}

func (l *LifetimeGrid) Get(p Position) time.Duration {
	if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
		return 0
	}
	return l.Expiry[p.Y*l.Width+p.X]
}

func (l *LifetimeGrid) Set(p Position, v time.Duration) {
	if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
		return
	}
	l.Expiry[p.Y*l.Width+p.X] = v
}

// LevelMaps - три параллельные сетки уровня. Существуют только вместе.
type LevelMaps struct {
	Grid     *Grid
	Fog      *FogGrid
	Lifetime *LifetimeGrid
}

// NewLevelMaps связывает сетки и проверяет, что размеры совпадают.
// Несовпадение - нарушение инварианта, паникуем.
func NewLevelMaps(grid *Grid, fog *FogGrid, lifetime *LifetimeGrid) LevelMaps {
	if grid == nil || fog == nil || lifetime == nil {
		panic("domain: level maps must be created together")
	}
	if fog.Width != grid.Width || fog.Height != grid.Height ||
		lifetime.Width != grid.Width || lifetime.Height != grid.Height {
		panic(fmt.Sprintf("domain: grid %dx%d, fog %dx%d, lifetime %dx%d: dimension mismatch",
			grid.Width, grid.Height, fog.Width, fog.Height, lifetime.Width, lifetime.Height))
	}
	return LevelMaps{Grid: grid, Fog: fog, Lifetime: lifetime}
}

func mustPositive(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("domain: invalid grid size %dx%d", width, height))
	}
}
