package main

import (
	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/nsf/termbox-go"
)

// inputKind - что игрок хочет сделать
type inputKind uint8

const (
	inputNone inputKind = iota
	inputQuit
	inputCursor  // сдвиг курсора на Delta
	inputCommand // команда над клеткой под курсором или без клетки
	inputClick   // мышь: команда над клеткой экрана (MouseX, MouseY)
	inputResize
	inputError
)

// inputEvent - событие ввода, уже переведенное на язык игры
type inputEvent struct {
	Kind   inputKind
	Delta  domain.Position
	Action domain.ActionType
	MouseX int
	MouseY int
	Err    error
}

// pollInput читает termbox в отдельной горутине и отдает события в канал.
// Игру трогает только главный цикл.
func pollInput() <-chan inputEvent {
	ch := make(chan inputEvent, 16)
	go func() {
		defer close(ch)
		for {
			ev := termbox.PollEvent()
			in := translateEvent(ev)
			if in.Kind == inputNone {
				continue
			}
			ch <- in
			if in.Kind == inputQuit || in.Kind == inputError {
				return
			}
		}
	}()
	return ch
}

var keyMoves = map[termbox.Key]domain.Position{
	termbox.KeyArrowUp:    domain.DirUp.Vector(),
	termbox.KeyArrowDown:  domain.DirDown.Vector(),
	termbox.KeyArrowLeft:  domain.DirLeft.Vector(),
	termbox.KeyArrowRight: domain.DirRight.Vector(),
}

var runeMoves = map[rune]domain.Position{
	'k': domain.DirUp.Vector(),
	'j': domain.DirDown.Vector(),
	'h': domain.DirLeft.Vector(),
	'l': domain.DirRight.Vector(),
}

var runeActions = map[rune]domain.ActionType{
	'a': domain.ActionPlaceArrow,
	'x': domain.ActionRemoveArrow,
	'w': domain.ActionBuildWall,
	'c': domain.ActionClearCell,
	'r': domain.ActionRestartLevel,
}

// translateEvent переводит событие termbox в событие игры
func translateEvent(ev termbox.Event) inputEvent {
	switch ev.Type {
	case termbox.EventError:
		return inputEvent{Kind: inputError, Err: ev.Err}
	case termbox.EventResize:
		return inputEvent{Kind: inputResize}
	case termbox.EventMouse:
		return translateMouse(ev)
	case termbox.EventKey:
		return translateKey(ev)
	}
	return inputEvent{}
}

func translateKey(ev termbox.Event) inputEvent {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return inputEvent{Kind: inputQuit}
	case termbox.KeyEnter:
		return inputEvent{Kind: inputCommand, Action: domain.ActionContinue}
	case termbox.KeySpace:
		return inputEvent{Kind: inputCommand, Action: domain.ActionTogglePause}
	}
	if d, ok := keyMoves[ev.Key]; ok {
		return inputEvent{Kind: inputCursor, Delta: d}
	}

	if ev.Ch == 'q' {
		return inputEvent{Kind: inputQuit}
	}
	if d, ok := runeMoves[ev.Ch]; ok {
		return inputEvent{Kind: inputCursor, Delta: d}
	}
	if a, ok := runeActions[ev.Ch]; ok {
		return inputEvent{Kind: inputCommand, Action: a}
	}
	return inputEvent{}
}

// translateMouse: левая кнопка ставит/крутит стрелку, правая убирает стрелку или строит стену
func translateMouse(ev termbox.Event) inputEvent {
	switch ev.Key {
	case termbox.MouseLeft:
		return inputEvent{Kind: inputClick, Action: domain.ActionPlaceArrow, MouseX: ev.MouseX, MouseY: ev.MouseY}
	case termbox.MouseRight:
		return inputEvent{Kind: inputClick, Action: domain.ActionClearCell, MouseX: ev.MouseX, MouseY: ev.MouseY}
	}
	return inputEvent{}
}

// needsCell - команды, которым нужна клетка
func needsCell(a domain.ActionType) bool {
	switch a {
	case domain.ActionPlaceArrow, domain.ActionRemoveArrow, domain.ActionBuildWall, domain.ActionClearCell:
		return true
	}
	return false
}
