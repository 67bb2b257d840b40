package utils

// ScriptedRand отдает заранее заданные значения по очереди.
// Когда очередь пуста: Intn -> 0, Float64 -> 0.999 (никакой шанс не срабатывает).
// Shuffle оставляет порядок без изменений.
type ScriptedRand struct {
	Ints   []int
	Floats []float64
}

func (r *ScriptedRand) Intn(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	return ((v % n) + n) % n
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.999
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

func (r *ScriptedRand) Shuffle(n int, swap func(i, j int)) {}
