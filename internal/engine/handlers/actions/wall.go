package actions

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine/handlers"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
)

// HandleBuildWall ставит стену за золото.
// Нужны: деньги, подходящая клетка и открытый туман.
func HandleBuildWall(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	cell, ok := editableCell(ctx, p)
	if !ok {
		return handlers.Rejected(), nil
	}
	w := ctx.World
	cost := ctx.Tuning.Economy.WallCost

	tile, _ := w.Grid.Get(cell)
	if w.Run.Gold < cost || !tile.IsBuildable() || !w.Fog.IsRevealed(cell) {
		return handlers.Rejected(), nil
	}

	w.Grid.Set(cell, domain.TileWall)
	// Таймер жидкости под стеной больше не нужен
	w.Lifetime.Set(cell, 0)
	w.Run.Gold -= cost

	return handlers.Applied("Wall built"), nil
}
