package domain

import "strings"

// Tile - тип клетки карты шахты
type Tile uint8

const (
	TileEmpty Tile = iota
	TileDirt
	TileHardDirt
	TileCrackedDirt
	TileWall
	TileGold
	TilePresent
	TileChest
	TileUpgradeLoot // звезда: массовое повышение уровня
	TileDwarfLoot   // капсула: новый гном
	TileWater
	TileLava
	TileWaterSource
	TileLavaSource
	TileCrackedHardDirt // трещина в твердой земле: проходимость как у твердой
)

var tileStringToKind = map[string]Tile{
	"EMPTY":        TileEmpty,
	"DIRT":         TileDirt,
	"HARD_DIRT":    TileHardDirt,
	"CRACKED_DIRT": TileCrackedDirt,
	"WALL":         TileWall,
	"GOLD":         TileGold,
	"PRESENT":      TilePresent,
	"CHEST":        TileChest,
	"UPGRADE_LOOT": TileUpgradeLoot,
	"DWARF_LOOT":   TileDwarfLoot,
	"WATER":        TileWater,
	"LAVA":         TileLava,
	"WATER_SOURCE": TileWaterSource,
	"LAVA_SOURCE":  TileLavaSource,

	"CRACKED_HARD_DIRT": TileCrackedHardDirt,
}

var tileKindToString = map[Tile]string{
	TileEmpty:       "EMPTY",
	TileDirt:        "DIRT",
	TileHardDirt:    "HARD_DIRT",
	TileCrackedDirt: "CRACKED_DIRT",
	TileWall:        "WALL",
	TileGold:        "GOLD",
	TilePresent:     "PRESENT",
	TileChest:       "CHEST",
	TileUpgradeLoot: "UPGRADE_LOOT",
	TileDwarfLoot:   "DWARF_LOOT",
	TileWater:       "WATER",
	TileLava:        "LAVA",
	TileWaterSource: "WATER_SOURCE",
	TileLavaSource:  "LAVA_SOURCE",

	TileCrackedHardDirt: "CRACKED_HARD_DIRT",
}

// ParseTile конвертирует строку в Tile. Неизвестное имя -> (TileEmpty, false)
func ParseTile(s string) (Tile, bool) {
	t, ok := tileStringToKind[strings.ToUpper(s)]
	return t, ok
}

func (t Tile) String() string {
	if val, ok := tileKindToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsFluid - вода или лава (без источников)
func (t Tile) IsFluid() bool {
	return t == TileWater || t == TileLava
}

// IsSource - неиссякаемый источник жидкости
func (t Tile) IsSource() bool {
	return t == TileWaterSource || t == TileLavaSource
}

// IsDiggable - любая земля, через которую можно прокопаться
func (t Tile) IsDiggable() bool {
	return t == TileDirt || t == TileHardDirt || t.IsCracked()
}

// IsHard - твердая земля, целая или с трещиной
func (t Tile) IsHard() bool {
	return t == TileHardDirt || t == TileCrackedHardDirt
}

// IsCracked - трещина любого типа: сигнал обвала под гномом
func (t Tile) IsCracked() bool {
	return t == TileCrackedDirt || t == TileCrackedHardDirt
}

// IsReward - клетки, к которым гном поворачивает сам
func (t Tile) IsReward() bool {
	switch t {
	case TileGold, TilePresent, TileChest, TileUpgradeLoot, TileDwarfLoot:
		return true
	}
	return false
}

// IsBuildable - можно ли поставить стену поверх клетки
func (t Tile) IsBuildable() bool {
	switch t {
	case TileEmpty, TileDirt, TileWater, TileLava, TileHardDirt, TileCrackedDirt, TileCrackedHardDirt:
		return true
	}
	return false
}

// FluidOf возвращает жидкость, которую порождает источник.
// Для не-источников возвращает TileEmpty.
func (t Tile) FluidOf() Tile {
	switch t {
	case TileWaterSource:
		return TileWater
	case TileLavaSource:
		return TileLava
	}
	return TileEmpty
}

// RewardOf - какую награду дает клетка, когда гном на нее заходит
func (t Tile) RewardOf() Reward {
	switch t {
	case TileGold:
		return RewardGold
	case TilePresent:
		return RewardPresent
	case TileChest:
		return RewardChest
	case TileUpgradeLoot:
		return RewardUpgradeLoot
	case TileDwarfLoot:
		return RewardDwarfLoot
	case TileCrackedDirt, TileCrackedHardDirt:
		return RewardCrackedDirt
	}
	return RewardNone
}
