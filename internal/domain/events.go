package domain

import (
	"strings"
	"time"
)

// EventType - Внутренний числовой идентификатор события симуляции
type EventType uint8

const (
	EventUnknown EventType = iota
	EventRewardCollected
	EventToolGranted
	EventDwarfSpawned
	EventDwarfKilled
	EventDwarvesMerged
	EventLevelWon
	EventLevelLost
	EventFloodWarning
	EventCaveIn
	EventLevelStarted
)

var eventStringToCmd = map[string]EventType{
	"REWARD_COLLECTED": EventRewardCollected,
	"TOOL_GRANTED":     EventToolGranted,
	"DWARF_SPAWNED":    EventDwarfSpawned,
	"DWARF_KILLED":     EventDwarfKilled,
	"DWARVES_MERGED":   EventDwarvesMerged,
	"LEVEL_WON":        EventLevelWon,
	"LEVEL_LOST":       EventLevelLost,
	"FLOOD_WARNING":    EventFloodWarning,
	"CAVE_IN":          EventCaveIn,
	"LEVEL_STARTED":    EventLevelStarted,
}

var eventCmdToString = map[EventType]string{
	EventRewardCollected: "REWARD_COLLECTED",
	EventToolGranted:     "TOOL_GRANTED",
	EventDwarfSpawned:    "DWARF_SPAWNED",
	EventDwarfKilled:     "DWARF_KILLED",
	EventDwarvesMerged:   "DWARVES_MERGED",
	EventLevelWon:        "LEVEL_WON",
	EventLevelLost:       "LEVEL_LOST",
	EventFloodWarning:    "FLOOD_WARNING",
	EventCaveIn:          "CAVE_IN",
	EventLevelStarted:    "LEVEL_STARTED",
}

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	upper := strings.ToUpper(s)
	if val, ok := eventStringToCmd[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a EventType) String() string {
	if val, ok := eventCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - уведомление для коллабораторов (звук, HUD). Ответа не ждем.
// Заполнены только поля, осмысленные для конкретного типа.
type Event struct {
	Type    EventType
	At      time.Duration
	Pos     Position
	DwarfID string
	Level   int
	Reward  Reward
	Tool    Tool
	Count   int
}
