package actions

import (
	"fmt"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine/handlers"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
)

// HandlePlaceArrow ставит стрелку или поворачивает существующую
func HandlePlaceArrow(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	cell, ok := editableCell(ctx, p)
	if !ok {
		return handlers.Rejected(), nil
	}
	a := ctx.World.Arrows.PlaceOrCycle(cell)
	return handlers.Applied(fmt.Sprintf("Arrow %s at %d,%d", a.Dir, cell.X, cell.Y)), nil
}

// HandleRemoveArrow убирает стрелку, если она есть
func HandleRemoveArrow(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	cell, ok := editableCell(ctx, p)
	if !ok || !ctx.World.Arrows.Remove(cell) {
		return handlers.Rejected(), nil
	}
	return handlers.Applied("Arrow removed"), nil
}

// HandleClearCell - "правый клик": сначала убирает стрелку, иначе строит стену
func HandleClearCell(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	if res, err := HandleRemoveArrow(ctx, p); err != nil || res.Applied {
		return res, err
	}
	return HandleBuildWall(ctx, p)
}

// editableCell: клетка в пределах карты, и уровень еще идет
func editableCell(ctx handlers.Context, p api.PositionPayload) (domain.Position, bool) {
	cell := domain.Position{X: p.X, Y: p.Y}
	if ctx.World.Run.GameOver || !ctx.World.Grid.InBounds(cell) {
		return cell, false
	}
	return cell, true
}
