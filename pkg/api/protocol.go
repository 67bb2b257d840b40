package api

import (
	"encoding/json"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
)

// --- ДВИЖОК -> КОЛЛАБОРАТОРЫ ---

// Snapshot - полный снимок состояния уровня на текущий кадр.
// Все срезы - копии: изменение снимка не трогает симуляцию.
type Snapshot struct {
	Level  int             `json:"level"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	NowMs  int64           `json:"nowMs"`
	Spawn  domain.Position `json:"spawn"`

	// Tiles и Revealed - плоские сетки, индекс y*Width + x
	Tiles    []domain.Tile `json:"tiles"`
	Revealed []bool        `json:"revealed"`

	Dwarves  []DwarfView   `json:"dwarves"`
	Arrows   []ArrowView   `json:"arrows"`
	Warnings []WarningView `json:"warnings"`
	Run      RunView       `json:"run"`
}

// TileAt - клетка снимка; за пределами карты (TileEmpty, false)
func (s *Snapshot) TileAt(x, y int) (domain.Tile, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return domain.TileEmpty, false
	}
	return s.Tiles[y*s.Width+x], true
}

// IsRevealed - открыта ли клетка туманом
func (s *Snapshot) IsRevealed(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.Revealed[y*s.Width+x]
}

// DwarfView - DTO гнома
type DwarfView struct {
	ID      string   `json:"id"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Level   int      `json:"level"`
	Dx      int      `json:"dx"`
	Dy      int      `json:"dy"`
	Tools   []string `json:"tools,omitempty"`
	InWater bool     `json:"inWater,omitempty"`
}

// ArrowView - DTO стрелки
type ArrowView struct {
	X   int              `json:"x"`
	Y   int              `json:"y"`
	Dir domain.Direction `json:"dir"`
}

// WarningView - клетка, которую скоро зальет
type WarningView struct {
	X           int   `json:"x"`
	Y           int   `json:"y"`
	ExpiresAtMs int64 `json:"expiresAtMs"`
}

// RunView - счетчики уровня
type RunView struct {
	Gold        int  `json:"gold"`
	ChestsFound int  `json:"chestsFound"`
	TotalChests int  `json:"totalChests"`
	GameOver    bool `json:"gameOver"`
	Won         bool `json:"won"`
	Paused      bool `json:"paused"`
}

// --- ИГРОК -> ДВИЖОК ---

// ClientCommand это корневой объект для всех команд игрока.
type ClientCommand struct {
	// AtMs - когда применить команду (только для сценариев headless-режима)
	AtMs int64 `json:"at_ms,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// PositionPayload используется для действий над клеткой (стрелки, стены).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LevelPayload используется для перехода на конкретный уровень.
type LevelPayload struct {
	Level int `json:"level"`
}

// NewCommand упаковывает payload в ClientCommand
func NewCommand(action domain.ActionType, payload any) (ClientCommand, error) {
	cmd := ClientCommand{Action: action.String()}
	if payload == nil {
		return cmd, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return cmd, err
	}
	cmd.Payload = raw
	return cmd, nil
}
