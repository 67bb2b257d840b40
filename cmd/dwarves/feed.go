package main

import (
	"fmt"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/notify"
)

// Feed - лента сообщений для HUD. Слушает события симуляции,
// как это делал бы звуковой движок, и хранит последние строки.
type Feed struct {
	events <-chan domain.Event
	lines  []string
	limit  int
}

func newFeed(events <-chan domain.Event, limit int) *Feed {
	return &Feed{events: events, limit: limit}
}

// Pump забирает накопившиеся события, не блокируясь.
// Возвращает сами события, чтобы UI мог на них отреагировать.
func (f *Feed) Pump() []domain.Event {
	evs := notify.Drain(f.events)
	for _, ev := range evs {
		if line, ok := describe(ev); ok {
			f.push(line)
		}
	}
	return evs
}

func (f *Feed) push(line string) {
	f.lines = append(f.lines, line)
	if over := len(f.lines) - f.limit; over > 0 {
		f.lines = append(f.lines[:0], f.lines[over:]...)
	}
}

// Lines - последние сообщения, старые сверху
func (f *Feed) Lines() []string {
	return f.lines
}

// describe превращает событие в строку ленты. Частые события молчат.
func describe(ev domain.Event) (string, bool) {
	stamp := fmt.Sprintf("[%5.1fs]", ev.At.Seconds())
	switch ev.Type {
	case domain.EventRewardCollected:
		switch ev.Reward {
		case domain.RewardChest:
			return fmt.Sprintf("%s Chest opened at %d,%d", stamp, ev.Pos.X, ev.Pos.Y), true
		case domain.RewardUpgradeLoot:
			return fmt.Sprintf("%s Star! Mass upgrade", stamp), true
		}
		return "", false
	case domain.EventToolGranted:
		return fmt.Sprintf("%s Dwarf got %s", stamp, ev.Tool), true
	case domain.EventDwarfSpawned:
		return fmt.Sprintf("%s New dwarf at %d,%d", stamp, ev.Pos.X, ev.Pos.Y), true
	case domain.EventDwarfKilled:
		return fmt.Sprintf("%s Dwarf L%d lost at %d,%d", stamp, ev.Level, ev.Pos.X, ev.Pos.Y), true
	case domain.EventDwarvesMerged:
		return fmt.Sprintf("%s Merge! Dwarf is now L%d", stamp, ev.Level), true
	case domain.EventLevelWon:
		return fmt.Sprintf("%s Level %d complete", stamp, ev.Level), true
	case domain.EventLevelLost:
		return fmt.Sprintf("%s All dwarves lost on level %d", stamp, ev.Level), true
	case domain.EventFloodWarning:
		return fmt.Sprintf("%s Flooding near %d,%d (%d cells)", stamp, ev.Pos.X, ev.Pos.Y, ev.Count), true
	case domain.EventCaveIn:
		return fmt.Sprintf("%s Cave-in at %d,%d", stamp, ev.Pos.X, ev.Pos.Y), true
	case domain.EventLevelStarted:
		return fmt.Sprintf("%s Level %d: find %d chests", stamp, ev.Level, ev.Count), true
	}
	return "", false
}
