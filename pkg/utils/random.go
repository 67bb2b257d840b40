package utils

import "math/rand"

// Rand - все случайные решения симуляции идут через этот интерфейс.
// *rand.Rand ему удовлетворяет, в тестах подставляется ScriptedRand.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

var _ Rand = (*rand.Rand)(nil)

// NewRand создает локальный генератор (глобальный rand не используем)
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// LevelSeed выводит зерно уровня из мастер-зерна.
// attempt - номер перезапуска уровня, чтобы рестарт давал новую карту.
func LevelSeed(master int64, level, attempt int) int64 {
	return master + int64(level)*1_000_003 + int64(attempt)*7_919
}
