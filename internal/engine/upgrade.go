package engine

import "github.com/AvaTai/Merge-Dwarfs/internal/domain"

// PerformUpgrade - массовое повышение по кругу уровней.
// Начиная с pointer, ищет первый уровень с живыми гномами (максимальный уровень
// не участвует) и повышает их всех на один. Возвращает следующий указатель
// и число повышенных. Если никого не нашли, указатель не меняется.
func PerformUpgrade(dwarves []*domain.Dwarf, pointer int) (int, int) {
	level := pointer
	if level < 1 || level > domain.MaxLevel {
		level = 1
	}

	for i := 0; i < domain.MaxLevel; i++ {
		if level < domain.MaxLevel {
			promoted := 0
			for _, d := range dwarves {
				if d.Alive && d.Level == level {
					d.SetLevel(level + 1)
					promoted++
				}
			}
			if promoted > 0 {
				return wrapLevel(level + 1), promoted
			}
		}
		level = wrapLevel(level + 1)
	}
	return pointer, 0
}

func wrapLevel(level int) int {
	if level > domain.MaxLevel {
		return 1
	}
	return level
}

// Merge - пара слившихся гномов
type Merge struct {
	Survivor *domain.Dwarf
	Absorbed *domain.Dwarf
}

// MergePass сливает живых гномов одного уровня в одной клетке.
// Пары перебираются i<j, выживает гном с меньшим индексом, поэтому
// три гнома в одной клетке могут слиться каскадом за один проход.
func MergePass(dwarves []*domain.Dwarf) []Merge {
	var merges []Merge
	for i := 0; i < len(dwarves); i++ {
		for j := i + 1; j < len(dwarves); j++ {
			a, b := dwarves[i], dwarves[j]
			if !a.Alive || !b.Alive {
				continue
			}
			if a.Pos != b.Pos || a.Level != b.Level || a.Level >= domain.MaxLevel {
				continue
			}
			a.SetLevel(a.Level + 1)
			b.Kill()
			merges = append(merges, Merge{Survivor: a, Absorbed: b})
		}
	}
	return merges
}
