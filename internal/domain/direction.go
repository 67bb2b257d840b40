package domain

// Direction - направление стрелки. Порядок констант задает цикл переключения.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directionVectors = [4]Position{
	DirUp:    {0, -1},
	DirRight: {1, 0},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
}

var directionNames = [4]string{"UP", "RIGHT", "DOWN", "LEFT"}

// Next - следующее направление по кругу Up -> Right -> Down -> Left -> Up
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

// Vector возвращает единичный вектор направления
func (d Direction) Vector() Position {
	return directionVectors[d%4]
}

func (d Direction) String() string {
	return directionNames[d%4]
}
