package systems

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
)

// RevealRadius - радиус обзора гнома. Очки удваивают его.
func RevealRadius(d *domain.Dwarf, tun *tuning.Tuning) int {
	r := tun.Dwarves.RevealRadius
	if d.HasTool(domain.ToolGoggles) {
		r *= 2
	}
	return r
}

// RevealSurroundings открывает туман квадратом вокруг гнома.
// Туман обратно не закрывается, поэтому повторный вызов безопасен.
func RevealSurroundings(d *domain.Dwarf, fog *domain.FogGrid, tun *tuning.Tuning) {
	fog.RevealSquare(d.Pos, RevealRadius(d, tun))
}
