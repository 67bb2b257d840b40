package main

import (
	"fmt"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
	"github.com/nsf/termbox-go"
)

const (
	hudRows  = 1 // строка счетчиков сверху
	feedRows = 3 // лента сообщений снизу
)

// cellStyle - как рисуется клетка
type cellStyle struct {
	ch rune
	fg termbox.Attribute
	bg termbox.Attribute
}

var tileStyles = map[domain.Tile]cellStyle{
	domain.TileEmpty:           {' ', termbox.ColorDefault, termbox.ColorDefault},
	domain.TileDirt:            {'░', termbox.ColorYellow, termbox.ColorDefault},
	domain.TileHardDirt:        {'▓', termbox.ColorYellow, termbox.ColorDefault},
	domain.TileCrackedDirt:     {'%', termbox.ColorYellow, termbox.ColorDefault},
	domain.TileCrackedHardDirt: {'%', termbox.ColorYellow | termbox.AttrBold, termbox.ColorDefault},
	domain.TileWall:            {'█', termbox.ColorWhite, termbox.ColorDefault},
	domain.TileGold:            {'$', termbox.ColorYellow | termbox.AttrBold, termbox.ColorDefault},
	domain.TilePresent:         {'?', termbox.ColorMagenta | termbox.AttrBold, termbox.ColorDefault},
	domain.TileChest:           {'C', termbox.ColorYellow | termbox.AttrBold, termbox.ColorRed},
	domain.TileUpgradeLoot:     {'*', termbox.ColorCyan | termbox.AttrBold, termbox.ColorDefault},
	domain.TileDwarfLoot:       {'&', termbox.ColorGreen | termbox.AttrBold, termbox.ColorDefault},
	domain.TileWater:           {'~', termbox.ColorWhite, termbox.ColorBlue},
	domain.TileLava:            {'~', termbox.ColorYellow, termbox.ColorRed},
	domain.TileWaterSource:     {'≈', termbox.ColorWhite | termbox.AttrBold, termbox.ColorBlue},
	domain.TileLavaSource:      {'≈', termbox.ColorYellow | termbox.AttrBold, termbox.ColorRed},
}

var arrowGlyphs = map[domain.Direction]rune{
	domain.DirUp:    '^',
	domain.DirRight: '>',
	domain.DirDown:  'v',
	domain.DirLeft:  '<',
}

// Viewport - окно карты на экране. Origin - клетка мира в левом верхнем углу.
type Viewport struct {
	Origin        domain.Position
	Width, Height int
}

// Follow сдвигает окно так, чтобы курсор был внутри с отступом margin,
// и не дает окну вылезти за карту.
func (v *Viewport) Follow(cursor domain.Position, mapW, mapH, margin int) {
	margin = min(margin, (v.Width-1)/2, (v.Height-1)/2)
	margin = max(margin, 0)

	if cursor.X < v.Origin.X+margin {
		v.Origin.X = cursor.X - margin
	}
	if cursor.X > v.Origin.X+v.Width-1-margin {
		v.Origin.X = cursor.X - v.Width + 1 + margin
	}
	if cursor.Y < v.Origin.Y+margin {
		v.Origin.Y = cursor.Y - margin
	}
	if cursor.Y > v.Origin.Y+v.Height-1-margin {
		v.Origin.Y = cursor.Y - v.Height + 1 + margin
	}

	v.Origin.X = clampOrigin(v.Origin.X, mapW, v.Width)
	v.Origin.Y = clampOrigin(v.Origin.Y, mapH, v.Height)
}

// Center ставит клетку в середину окна
func (v *Viewport) Center(p domain.Position, mapW, mapH int) {
	v.Origin = domain.Position{
		X: clampOrigin(p.X-v.Width/2, mapW, v.Width),
		Y: clampOrigin(p.Y-v.Height/2, mapH, v.Height),
	}
}

// ToWorld переводит координаты экрана (с учетом HUD) в клетку мира
func (v *Viewport) ToWorld(sx, sy int) (domain.Position, bool) {
	x, y := sx, sy-hudRows
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return domain.Position{}, false
	}
	return v.Origin.Shift(x, y), true
}

func clampOrigin(o, mapSize, viewSize int) int {
	if mapSize <= viewSize {
		return 0
	}
	return min(max(o, 0), mapSize-viewSize)
}

// drawFrame рисует весь кадр по снимку
func drawFrame(snap *api.Snapshot, view *Viewport, cursor domain.Position, feed []string, status string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	// 1. Карта
	for vy := 0; vy < view.Height; vy++ {
		for vx := 0; vx < view.Width; vx++ {
			p := view.Origin.Shift(vx, vy)
			tile, ok := snap.TileAt(p.X, p.Y)
			if !ok || !snap.IsRevealed(p.X, p.Y) {
				continue
			}
			st := tileStyles[tile]
			termbox.SetCell(vx, vy+hudRows, st.ch, st.fg, st.bg)
		}
	}

	// 2. Предупреждения, стрелки, гномы - поверх клеток
	for _, w := range snap.Warnings {
		if snap.IsRevealed(w.X, w.Y) {
			setAt(view, w.X, w.Y, '!', termbox.ColorWhite|termbox.AttrBold, termbox.ColorRed)
		}
	}
	for _, a := range snap.Arrows {
		setAt(view, a.X, a.Y, arrowGlyphs[a.Dir], termbox.ColorCyan|termbox.AttrBold, termbox.ColorDefault)
	}
	for _, d := range snap.Dwarves {
		bg := termbox.ColorDefault
		if d.InWater {
			bg = termbox.ColorBlue
		}
		setAt(view, d.X, d.Y, rune('0'+d.Level), termbox.ColorGreen|termbox.AttrBold, bg)
	}

	// 3. Курсор
	if sx, sy, ok := toScreen(view, cursor.X, cursor.Y); ok {
		highlight(sx, sy)
	}

	// 4. HUD и лента
	printLine(0, 0, hudLine(snap, cursor, status), termbox.ColorBlack, termbox.ColorWhite, view.Width)
	for i, line := range feed {
		printLine(0, hudRows+view.Height+i, line, termbox.ColorDefault, termbox.ColorDefault, view.Width)
	}

	// 5. Баннер конца уровня
	if text := bannerText(snap.Run); text != "" {
		x := max((view.Width-len([]rune(text)))/2, 0)
		printLine(x, hudRows+view.Height/2, text, termbox.ColorBlack|termbox.AttrBold, termbox.ColorYellow, view.Width-x)
	}

	termbox.Flush()
}

func setAt(view *Viewport, x, y int, ch rune, fg, bg termbox.Attribute) {
	if sx, sy, ok := toScreen(view, x, y); ok {
		termbox.SetCell(sx, sy, ch, fg, bg)
	}
}

// highlight перекрашивает фон уже нарисованной клетки
func highlight(sx, sy int) {
	w, h := termbox.Size()
	if sx >= w || sy >= h {
		return
	}
	cell := termbox.CellBuffer()[sy*w+sx]
	ch := cell.Ch
	if ch == 0 {
		ch = ' '
	}
	termbox.SetCell(sx, sy, ch, termbox.ColorBlack, termbox.ColorWhite)
}

func toScreen(view *Viewport, x, y int) (int, int, bool) {
	vx, vy := x-view.Origin.X, y-view.Origin.Y
	if vx < 0 || vy < 0 || vx >= view.Width || vy >= view.Height {
		return 0, 0, false
	}
	return vx, vy + hudRows, true
}

func printLine(x, y int, s string, fg, bg termbox.Attribute, limit int) {
	i := 0
	for _, r := range s {
		if i >= limit {
			return
		}
		termbox.SetCell(x+i, y, r, fg, bg)
		i++
	}
	// Добиваем фон до конца строки, чтобы HUD выглядел полосой
	for ; bg != termbox.ColorDefault && i < limit; i++ {
		termbox.SetCell(x+i, y, ' ', fg, bg)
	}
}

func hudLine(snap *api.Snapshot, cursor domain.Position, status string) string {
	run := snap.Run
	line := fmt.Sprintf(" Level %d | Gold %d | Chests %d/%d | Dwarves %d | %d,%d",
		snap.Level, run.Gold, run.ChestsFound, run.TotalChests, len(snap.Dwarves), cursor.X, cursor.Y)
	if run.Paused {
		line += " | PAUSED"
	}
	if status != "" {
		line += " | " + status
	}
	return line
}

func bannerText(run api.RunView) string {
	switch {
	case run.GameOver && run.Won:
		return " LEVEL COMPLETE - press Enter "
	case run.GameOver:
		return " ALL DWARVES LOST - press Enter to retry "
	case run.Paused:
		return " PAUSED "
	}
	return ""
}
