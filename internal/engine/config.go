package engine

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни:
	// зерно уровня выводится через utils.LevelSeed.
	Seed       int64
	StartLevel int
	Tuning     tuning.Tuning
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		StartLevel: 1,
		Tuning:     tuning.Default(),
	}
}
