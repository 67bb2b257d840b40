package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// Validate отсекает то, что не может быть клеткой ни на одной карте.
// Выход за правую и нижнюю границу проверяет хендлер: размер знает только мир.
func (p PositionPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("cell coordinates must be non-negative")
	}
	return nil
}

func (p LevelPayload) Validate() error {
	if p.Level < 1 {
		return errors.New("level must be positive")
	}
	return nil
}
