package domain

import "encoding/json"

// Command - команда игрока для движка.
// Payload парсится конкретным хендлером.
type Command struct {
	Action  ActionType
	Payload json.RawMessage
}
