package domain

import "sort"

// Arrow - стрелка игрока. Гном, наступивший на нее, поворачивает в ее сторону.
type Arrow struct {
	Pos Position
	Dir Direction
}

// ArrowSet - не больше одной стрелки на клетку
type ArrowSet struct {
	byPos map[Position]*Arrow
}

func NewArrowSet() *ArrowSet {
	return &ArrowSet{byPos: make(map[Position]*Arrow)}
}

// PlaceOrCycle ставит стрелку вверх или, если стрелка уже есть,
// поворачивает ее на следующее направление.
func (s *ArrowSet) PlaceOrCycle(p Position) Arrow {
	if a, ok := s.byPos[p]; ok {
		a.Dir = a.Dir.Next()
		return *a
	}
	a := &Arrow{Pos: p, Dir: DirUp}
	s.byPos[p] = a
	return *a
}

// Remove возвращает false, если стрелки не было
func (s *ArrowSet) Remove(p Position) bool {
	if _, ok := s.byPos[p]; !ok {
		return false
	}
	delete(s.byPos, p)
	return true
}

func (s *ArrowSet) At(p Position) (Arrow, bool) {
	a, ok := s.byPos[p]
	if !ok {
		return Arrow{}, false
	}
	return *a, true
}

func (s *ArrowSet) Len() int {
	return len(s.byPos)
}

// All возвращает копии стрелок, отсортированные построчно
func (s *ArrowSet) All() []Arrow {
	out := make([]Arrow, 0, len(s.byPos))
	for _, a := range s.byPos {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}
