package domain

import "math"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Порядок обхода соседей важен: вверх, вниз, влево, вправо.
// На нем держатся детерминированные решения ИИ.
var (
	offsetsCardinal = [4]Position{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	offsetsDiagonal = [4]Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Add возвращает новую позицию со смещением
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Shift - то же самое, но смещение передается числами
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Neg - обратный вектор
func (p Position) Neg() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// IsZero - нулевой вектор (гном стоит на месте)
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Neighbors4 возвращает ортогональных соседей в порядке вверх, вниз, влево, вправо
func (p Position) Neighbors4() []Position {
	out := make([]Position, 0, 4)
	for _, o := range offsetsCardinal {
		out = append(out, p.Add(o))
	}
	return out
}

// Neighbors8 - сначала ортогональные, потом диагональные соседи
func (p Position) Neighbors8() []Position {
	out := p.Neighbors4()
	for _, o := range offsetsDiagonal {
		out = append(out, p.Add(o))
	}
	return out
}

// CardinalOffsets возвращает копию списка единичных векторов (вверх, вниз, влево, вправо)
func CardinalOffsets() []Position {
	out := offsetsCardinal
	return out[:]
}

// DistanceTo возвращает точное расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	return math.Sqrt(math.Pow(float64(p.X-other.X), 2) + math.Pow(float64(p.Y-other.Y), 2))
}

// ChebyshevTo - "квадратное" расстояние: max(|dx|, |dy|)
func (p Position) ChebyshevTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return max(dx, dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
