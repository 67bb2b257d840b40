package actions

import (
	"fmt"

	"github.com/AvaTai/Merge-Dwarfs/internal/engine/handlers"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
)

func HandleTogglePause(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Control.TogglePause() {
		return handlers.Applied("Paused"), nil
	}
	return handlers.Applied("Resumed"), nil
}

func HandleAdvanceLevel(ctx handlers.Context, p api.LevelPayload) (handlers.Result, error) {
	ctx.Control.StartLevel(p.Level)
	return handlers.Applied(fmt.Sprintf("Level %d", p.Level)), nil
}

func HandleRestartLevel(ctx handlers.Context) (handlers.Result, error) {
	ctx.Control.RestartLevel()
	return handlers.Applied("Level restarted"), nil
}

// HandleContinue работает только после конца уровня:
// победа ведет на следующий уровень, поражение - заново на этот же.
func HandleContinue(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Control.Continue() {
		return handlers.Rejected(), nil
	}
	return handlers.Applied("Next round"), nil
}
