package domain

import (
	"math"
	"time"
)

// MaxLevel - максимальный уровень гнома. Дальше сливаться нельзя.
const MaxLevel = 5

// LifetimeInfinite - метка "жидкость связана с источником и не испаряется"
const LifetimeInfinite = time.Duration(math.MaxInt64)

// Reward - сигнал, который гном возвращает после шага
type Reward uint8

const (
	RewardNone Reward = iota
	RewardGold
	RewardPresent
	RewardChest
	RewardUpgradeLoot
	RewardDwarfLoot
	RewardCrackedDirt
)

var rewardNames = map[Reward]string{
	RewardNone:        "NONE",
	RewardGold:        "GOLD",
	RewardPresent:     "PRESENT",
	RewardChest:       "CHEST",
	RewardUpgradeLoot: "UPGRADE_LOOT",
	RewardDwarfLoot:   "DWARF_LOOT",
	RewardCrackedDirt: "CRACKED_DIRT",
}

func (r Reward) String() string {
	if val, ok := rewardNames[r]; ok {
		return val
	}
	return "UNKNOWN"
}

// Tool - инструмент гнома. Каждый либо есть, либо нет.
type Tool uint8

const (
	ToolPickaxe Tool = iota + 1
	ToolGoggles
	ToolAle
)

// AllTools - порядок важен: из него случайно выбирается подарок
var AllTools = []Tool{ToolPickaxe, ToolGoggles, ToolAle}

func (t Tool) String() string {
	switch t {
	case ToolPickaxe:
		return "PICKAXE"
	case ToolGoggles:
		return "GOGGLES"
	case ToolAle:
		return "ALE"
	}
	return "UNKNOWN"
}
