package actions

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine/handlers"
)

// Registry возвращает таблицу хендлеров для всех команд игрока
func Registry() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionPlaceArrow:   handlers.WithPayload(HandlePlaceArrow),
		domain.ActionRemoveArrow:  handlers.WithPayload(HandleRemoveArrow),
		domain.ActionBuildWall:    handlers.WithPayload(HandleBuildWall),
		domain.ActionClearCell:    handlers.WithPayload(HandleClearCell),
		domain.ActionTogglePause:  handlers.WithEmptyPayload(HandleTogglePause),
		domain.ActionAdvanceLevel: handlers.WithPayload(HandleAdvanceLevel),
		domain.ActionRestartLevel: handlers.WithEmptyPayload(HandleRestartLevel),
		domain.ActionContinue:     handlers.WithEmptyPayload(HandleContinue),
	}
}
