package engine

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
)

// Snapshot собирает копию состояния для рендера, звука и HUD.
// Коллабораторы работают только со снимком и не могут задеть мир.
func (g *Game) Snapshot() *api.Snapshot {
	w := g.World

	snap := &api.Snapshot{
		Level:    w.Level,
		Width:    w.Grid.Width,
		Height:   w.Grid.Height,
		NowMs:    g.now.Milliseconds(),
		Spawn:    w.Spawn,
		Tiles:    w.Grid.Clone().Tiles,
		Revealed: w.Fog.Clone().Revealed,
		Run: api.RunView{
			Gold:        w.Run.Gold,
			ChestsFound: w.Run.ChestsFound,
			TotalChests: w.Run.TotalChests,
			GameOver:    w.Run.GameOver,
			Won:         w.Run.Won,
			Paused:      g.Paused,
		},
	}

	// 1. Гномы
	snap.Dwarves = make([]api.DwarfView, 0, len(w.Dwarves))
	for _, d := range w.Dwarves {
		if !d.Alive {
			continue
		}
		snap.Dwarves = append(snap.Dwarves, toDwarfView(d))
	}

	// 2. Стрелки
	arrows := w.Arrows.All()
	snap.Arrows = make([]api.ArrowView, 0, len(arrows))
	for _, a := range arrows {
		snap.Arrows = append(snap.Arrows, api.ArrowView{X: a.Pos.X, Y: a.Pos.Y, Dir: a.Dir})
	}

	// 3. Предупреждения о затоплении
	warnings := g.Warnings.Items()
	snap.Warnings = make([]api.WarningView, 0, len(warnings))
	for _, wr := range warnings {
		snap.Warnings = append(snap.Warnings, api.WarningView{
			X: wr.Pos.X, Y: wr.Pos.Y, ExpiresAtMs: wr.ExpiresAt.Milliseconds(),
		})
	}

	return snap
}

func toDwarfView(d *domain.Dwarf) api.DwarfView {
	view := api.DwarfView{
		ID:      d.ID,
		X:       d.Pos.X,
		Y:       d.Pos.Y,
		Level:   d.Level,
		Dx:      d.Dir.X,
		Dy:      d.Dir.Y,
		InWater: d.InWater,
	}
	for _, t := range domain.AllTools {
		if d.HasTool(t) {
			view.Tools = append(view.Tools, t.String())
		}
	}
	return view
}
