package mine

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
)

// Generate - основная точка входа: готовый мир уровня level
func Generate(level int, rng utils.Rand, tun *tuning.Tuning, now time.Duration) *domain.World {
	return NewLevel(level, rng, tun).WithNow(now).Build()
}
