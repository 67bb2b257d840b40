package mine

import "github.com/AvaTai/Merge-Dwarfs/internal/tuning"

// Params - параметры уровня, растущие линейно с номером
type Params struct {
	Width          int
	Height         int
	Chests         int
	WaterPockets   int
	LavaPockets    int
	HardDirtRadius int
}

// ParamsFor считает параметры уровня level (нумерация с 1)
func ParamsFor(level int, tun *tuning.Tuning) Params {
	n := max(level, 1) - 1
	return Params{
		Width:          tun.Map.BaseWidth + tun.Map.WidthPerLevel*n,
		Height:         tun.Map.BaseHeight + tun.Map.HeightPerLevel*n,
		Chests:         tun.Seeding.BaseChests + tun.Seeding.ChestsPerLevel*n,
		WaterPockets:   tun.Seeding.BaseWaterPockets + tun.Seeding.PocketsPerLevel*n,
		LavaPockets:    tun.Seeding.BaseLavaPockets + tun.Seeding.PocketsPerLevel*n,
		HardDirtRadius: tun.Seeding.BaseHardDirtRadius + tun.Seeding.HardDirtRadiusPerLevel*n,
	}
}
