package handlers

import (
	"encoding/json"
	"errors"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
)

// ErrUnknownAction - для команды нет хендлера
var ErrUnknownAction = errors.New("unknown action")

// LevelControl - то, что хендлеры могут попросить у игры помимо мутаций мира.
// Game неявно реализует этот интерфейс.
type LevelControl interface {
	StartLevel(level int)
	RestartLevel()
	Continue() bool
	TogglePause() bool
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	World   *domain.World
	Tuning  *tuning.Tuning
	Control LevelControl
}

// Result - возвращает результат выполнения команды.
// Applied=false означает "ничего не произошло" (например, не хватило золота).
type Result struct {
	Applied bool
	Msg     string
}

// HandlerFunc - это контракт для любой команды (PLACE_ARROW, BUILD_WALL, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// Rejected - вспомогательная функция для молча отклоненной команды
func Rejected() Result {
	return Result{}
}

// Applied - успешный результат с текстом для HUD
func Applied(msg string) Result {
	return Result{Applied: true, Msg: msg}
}
