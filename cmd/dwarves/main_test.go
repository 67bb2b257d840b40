package main

import (
	"strings"
	"testing"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		want inputEvent
	}{
		{"esc quits", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, inputEvent{Kind: inputQuit}},
		{"q quits", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, inputEvent{Kind: inputQuit}},
		{"arrow key", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, inputEvent{Kind: inputCursor, Delta: domain.Position{X: -1}}},
		{"vi key", termbox.Event{Type: termbox.EventKey, Ch: 'j'}, inputEvent{Kind: inputCursor, Delta: domain.Position{Y: 1}}},
		{"place arrow", termbox.Event{Type: termbox.EventKey, Ch: 'a'}, inputEvent{Kind: inputCommand, Action: domain.ActionPlaceArrow}},
		{"wall", termbox.Event{Type: termbox.EventKey, Ch: 'w'}, inputEvent{Kind: inputCommand, Action: domain.ActionBuildWall}},
		{"space pauses", termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, inputEvent{Kind: inputCommand, Action: domain.ActionTogglePause}},
		{"enter continues", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, inputEvent{Kind: inputCommand, Action: domain.ActionContinue}},
		{"unmapped", termbox.Event{Type: termbox.EventKey, Ch: 'z'}, inputEvent{}},
		{"right click", termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseRight, MouseX: 3, MouseY: 4},
			inputEvent{Kind: inputClick, Action: domain.ActionClearCell, MouseX: 3, MouseY: 4}},
		{"resize", termbox.Event{Type: termbox.EventResize}, inputEvent{Kind: inputResize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateEvent(tt.ev))
		})
	}
}

func TestViewport_FollowKeepsCursorInside(t *testing.T) {
	v := Viewport{Width: 20, Height: 10}

	v.Follow(domain.Position{X: 30, Y: 5}, 60, 45, 4)
	assert.Equal(t, domain.Position{X: 15, Y: 0}, v.Origin)

	v.Follow(domain.Position{X: 59, Y: 44}, 60, 45, 4)
	assert.Equal(t, domain.Position{X: 40, Y: 35}, v.Origin, "clamped to the map edge")

	v.Follow(domain.Position{X: 0, Y: 0}, 60, 45, 4)
	assert.Equal(t, domain.Position{}, v.Origin)

	// Карта меньше окна - окно не двигается
	small := Viewport{Width: 80, Height: 40}
	small.Follow(domain.Position{X: 50, Y: 30}, 60, 35, 4)
	assert.Equal(t, domain.Position{}, small.Origin)
}

func TestViewport_CenterAndToWorld(t *testing.T) {
	v := Viewport{Width: 20, Height: 10}
	v.Center(domain.Position{X: 30, Y: 22}, 60, 45)
	assert.Equal(t, domain.Position{X: 20, Y: 17}, v.Origin)

	p, ok := v.ToWorld(0, hudRows)
	require.True(t, ok)
	assert.Equal(t, v.Origin, p)

	_, ok = v.ToWorld(5, 0)
	assert.False(t, ok, "HUD row is not part of the map")
	_, ok = v.ToWorld(20, 3)
	assert.False(t, ok)
}

func TestFeed_KeepsLatestLines(t *testing.T) {
	ch := make(chan domain.Event, 8)
	f := newFeed(ch, 2)

	ch <- domain.Event{Type: domain.EventLevelStarted, Level: 1, Count: 10}
	ch <- domain.Event{Type: domain.EventRewardCollected, Reward: domain.RewardGold}
	ch <- domain.Event{Type: domain.EventDwarvesMerged, Level: 3, At: 1500 * time.Millisecond}
	ch <- domain.Event{Type: domain.EventCaveIn, Pos: domain.Position{X: 4, Y: 2}}

	evs := f.Pump()
	assert.Len(t, evs, 4)

	lines := f.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Merge! Dwarf is now L3")
	assert.True(t, strings.HasPrefix(lines[0], "[  1.5s]"))
	assert.Contains(t, lines[1], "Cave-in at 4,2")
}

func TestLoadScript(t *testing.T) {
	src := `
# пауза через секунду
{"at_ms": 1000, "action": "TOGGLE_PAUSE"}
{"at_ms": 200, "action": "place_arrow", "payload": {"x": 1, "y": 2}}

{"at_ms": 200, "action": "REMOVE_ARROW", "payload": {"x": 1, "y": 2}}
`
	script, err := loadScript(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, script, 3)
	assert.Equal(t, "place_arrow", script[0].Action)
	assert.Equal(t, "REMOVE_ARROW", script[1].Action, "stable order for equal at_ms")
	assert.Equal(t, int64(1000), script[2].AtMs)

	_, err = loadScript(strings.NewReader(`{"at_ms": 1, "action": "FLY"}`))
	assert.ErrorContains(t, err, "line 1")

	_, err = loadScript(strings.NewReader("{\"action\": \"CONTINUE\"}\n{broken"))
	assert.ErrorContains(t, err, "line 2")
}

func TestSimulate_AppliesScriptOnTime(t *testing.T) {
	cfg := engine.Config{Seed: 99, StartLevel: 1, Tuning: tuning.Default()}
	g := engine.NewGame(cfg)
	spawn := g.World.Spawn

	place, err := api.NewCommand(domain.ActionPlaceArrow, api.PositionPayload{X: spawn.X, Y: spawn.Y})
	require.NoError(t, err)
	place.AtMs = 400
	pause, err := api.NewCommand(domain.ActionTogglePause, nil)
	require.NoError(t, err)
	pause.AtMs = 100

	simulate(g, g.Subscribe("test"), []api.ClientCommand{pause, place}, 50*time.Millisecond, 2*time.Second)

	assert.True(t, g.Paused)
	assert.Equal(t, 2*time.Second, g.Now())
	assert.Equal(t, 1, g.World.Arrows.Len(), "cell commands work while paused")
	assert.Len(t, g.World.Dwarves, 2)
}

func TestHudAndBanner(t *testing.T) {
	snap := &api.Snapshot{Level: 3, Run: api.RunView{Gold: 4, ChestsFound: 1, TotalChests: 14, Paused: true}}
	line := hudLine(snap, domain.Position{X: 7, Y: 8}, "Wall built")
	assert.Contains(t, line, "Level 3")
	assert.Contains(t, line, "Chests 1/14")
	assert.Contains(t, line, "PAUSED")
	assert.Contains(t, line, "Wall built")

	assert.Contains(t, bannerText(api.RunView{GameOver: true, Won: true}), "COMPLETE")
	assert.Contains(t, bannerText(api.RunView{GameOver: true}), "LOST")
	assert.Empty(t, bannerText(api.RunView{}))
}
