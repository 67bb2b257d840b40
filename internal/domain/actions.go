package domain

import "strings"

// ActionType - Внутренний числовой идентификатор команды игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionPlaceArrow
	ActionRemoveArrow
	ActionBuildWall
	ActionClearCell
	ActionTogglePause
	ActionAdvanceLevel
	ActionRestartLevel
	ActionContinue
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"PLACE_ARROW":   ActionPlaceArrow,
	"REMOVE_ARROW":  ActionRemoveArrow,
	"BUILD_WALL":    ActionBuildWall,
	"CLEAR_CELL":    ActionClearCell,
	"TOGGLE_PAUSE":  ActionTogglePause,
	"ADVANCE_LEVEL": ActionAdvanceLevel,
	"RESTART_LEVEL": ActionRestartLevel,
	"CONTINUE":      ActionContinue,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionPlaceArrow:   "PLACE_ARROW",
	ActionRemoveArrow:  "REMOVE_ARROW",
	ActionBuildWall:    "BUILD_WALL",
	ActionClearCell:    "CLEAR_CELL",
	ActionTogglePause:  "TOGGLE_PAUSE",
	ActionAdvanceLevel: "ADVANCE_LEVEL",
	ActionRestartLevel: "RESTART_LEVEL",
	ActionContinue:     "CONTINUE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
