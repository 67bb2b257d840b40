package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
)

var (
	// ErrMissingPayload - команде над клеткой или уровнем не передали данные
	ErrMissingPayload = errors.New("missing payload")
	// ErrInvalidPayload - данные не разобрались или не прошли Validate
	ErrInvalidPayload = errors.New("invalid payload")
)

// TypedHandlerFunc - хендлер, которому payload приходит уже разобранным в T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер без данных (TOGGLE_PAUSE, RESTART_LEVEL, CONTINUE)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload превращает типизированный хендлер в HandlerFunc.
// Разбор строгий: пустой payload и лишние поля - ошибка, а не нулевые координаты.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		payload, err := decodePayload[T](raw)
		if err != nil {
			return Rejected(), err
		}
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных. Что бы ни пришло, игнорируется.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}

func decodePayload[T any](raw json.RawMessage) (T, error) {
	var payload T

	// 1. "Клик без клетки" не должен превращаться в клик по (0,0)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return payload, ErrMissingPayload
	}

	// 2. Строгий разбор: опечатка в сценарии ("X" вместо "x") видна сразу
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	// 3. Проверки самого DTO (координаты, номер уровня)
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}
	return payload, nil
}
