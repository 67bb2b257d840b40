package tuning

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.schema.json
var schemaSource string

// ErrInvalid - файл прошел схему, но значения противоречат друг другу
var ErrInvalid = errors.New("invalid tuning")

// Tuning - все игровые константы. Время задается в миллисекундах.
type Tuning struct {
	Map     MapTuning     `yaml:"map"`
	Seeding SeedTuning    `yaml:"seeding"`
	Dwarves DwarfTuning   `yaml:"dwarves"`
	Fluids  FluidTuning   `yaml:"fluids"`
	Economy EconomyTuning `yaml:"economy"`
}

type MapTuning struct {
	BaseWidth      int `yaml:"base_width"`
	BaseHeight     int `yaml:"base_height"`
	WidthPerLevel  int `yaml:"width_per_level"`
	HeightPerLevel int `yaml:"height_per_level"`
	// SpawnClearRadius - окно вокруг спавна без лута
	SpawnClearRadius int `yaml:"spawn_clear_radius"`
}

type SeedTuning struct {
	BaseChests             int     `yaml:"base_chests"`
	ChestsPerLevel         int     `yaml:"chests_per_level"`
	BaseWaterPockets       int     `yaml:"base_water_pockets"`
	BaseLavaPockets        int     `yaml:"base_lava_pockets"`
	PocketsPerLevel        int     `yaml:"pockets_per_level"`
	BaseHardDirtRadius     int     `yaml:"base_hard_dirt_radius"`
	HardDirtRadiusPerLevel int     `yaml:"hard_dirt_radius_per_level"`
	DwarfLootChance        float64 `yaml:"dwarf_loot_chance"`
	UpgradeLootChance      float64 `yaml:"upgrade_loot_chance"`
	PresentChance          float64 `yaml:"present_chance"`
	GoldChance             float64 `yaml:"gold_chance"`
	CrackedDirtChance      float64 `yaml:"cracked_dirt_chance"`
}

type DwarfTuning struct {
	// SpeedsMs[i] - задержка хода гнома уровня i+1
	SpeedsMs            []int `yaml:"speeds_ms"`
	MinLevelForHardDirt int   `yaml:"min_level_for_hard_dirt"`
	RevealRadius        int   `yaml:"reveal_radius"`
	SpawnDelayMs        int   `yaml:"spawn_delay_ms"`
	DrownTimeMs         int   `yaml:"drown_time_ms"`
	AleDrownMultiplier  int   `yaml:"ale_drown_multiplier"`
}

type FluidTuning struct {
	UpdateDelayMs     int `yaml:"update_delay_ms"`
	LifetimeMs        int `yaml:"lifetime_ms"`
	WarningDurationMs int `yaml:"warning_duration_ms"`
}

type EconomyTuning struct {
	WallCost     int     `yaml:"wall_cost"`
	BonusGold    int     `yaml:"bonus_gold"`
	CaveInChance float64 `yaml:"cave_in_chance"`
}

// Default возвращает канонические значения игры
func Default() Tuning {
	return Tuning{
		Map: MapTuning{
			BaseWidth:        60,
			BaseHeight:       45,
			WidthPerLevel:    10,
			HeightPerLevel:   5,
			SpawnClearRadius: 5,
		},
		Seeding: SeedTuning{
			BaseChests:             10,
			ChestsPerLevel:         2,
			BaseWaterPockets:       5,
			BaseLavaPockets:        3,
			PocketsPerLevel:        1,
			BaseHardDirtRadius:     15,
			HardDirtRadiusPerLevel: 1,
			DwarfLootChance:        0.002,
			UpgradeLootChance:      0.005,
			PresentChance:          0.01,
			GoldChance:             0.09,
			CrackedDirtChance:      0.05,
		},
		Dwarves: DwarfTuning{
			SpeedsMs:            []int{1000, 800, 600, 400, 200},
			MinLevelForHardDirt: 3,
			RevealRadius:        2,
			SpawnDelayMs:        30000,
			DrownTimeMs:         5000,
			AleDrownMultiplier:  3,
		},
		Fluids: FluidTuning{
			UpdateDelayMs:     500,
			LifetimeMs:        3000,
			WarningDurationMs: 3000,
		},
		Economy: EconomyTuning{
			WallCost:     1,
			BonusGold:    5,
			CaveInChance: 0.5,
		},
	}
}

// Load читает YAML поверх значений по умолчанию.
// Документ сначала проверяется схемой, затем семантически.
func Load(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	return Parse(raw)
}

// Parse - то же, что Load, но из памяти
func Parse(raw []byte) (Tuning, error) {
	t := Default()

	// 1. Схема. Валидатор работает с JSON-значениями, поэтому
	// перегоняем YAML-документ через encoding/json.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return t, fmt.Errorf("tuning.yaml: %w", err)
		}
	}

	// 2. Накладываем значения на дефолты
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}

	// 3. Семантика
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func validateSchema(doc any) error {
	schema, err := jsonschema.CompileString("tuning.schema.json", schemaSource)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return schema.Validate(v)
}

// Validate проверяет то, что схема выразить не может
func (t Tuning) Validate() error {
	s := t.Seeding
	total := s.DwarfLootChance + s.UpgradeLootChance + s.PresentChance + s.GoldChance
	if total > 1 {
		return fmt.Errorf("%w: loot chances sum to %.3f", ErrInvalid, total)
	}
	if len(t.Dwarves.SpeedsMs) == 0 {
		return fmt.Errorf("%w: speeds_ms is empty", ErrInvalid)
	}
	for i := 1; i < len(t.Dwarves.SpeedsMs); i++ {
		if t.Dwarves.SpeedsMs[i] >= t.Dwarves.SpeedsMs[i-1] {
			return fmt.Errorf("%w: speeds_ms must strictly decrease (level %d)", ErrInvalid, i+1)
		}
	}
	if t.Map.BaseWidth <= 2*t.Map.SpawnClearRadius || t.Map.BaseHeight <= 2*t.Map.SpawnClearRadius {
		return fmt.Errorf("%w: base map smaller than the spawn window", ErrInvalid)
	}
	return nil
}

// --- Удобные геттеры ---

// MoveDelay - базовая задержка хода для уровня (уровень зажимается в допустимые пределы)
func (t Tuning) MoveDelay(level int) time.Duration {
	i := min(max(level, 1), len(t.Dwarves.SpeedsMs)) - 1
	return ms(t.Dwarves.SpeedsMs[i])
}

func (t Tuning) SpawnDelay() time.Duration       { return ms(t.Dwarves.SpawnDelayMs) }
func (t Tuning) DrownTime() time.Duration        { return ms(t.Dwarves.DrownTimeMs) }
func (t Tuning) FluidUpdateDelay() time.Duration { return ms(t.Fluids.UpdateDelayMs) }
func (t Tuning) FluidLifetime() time.Duration    { return ms(t.Fluids.LifetimeMs) }
func (t Tuning) WarningDuration() time.Duration  { return ms(t.Fluids.WarningDurationMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
