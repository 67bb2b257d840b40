package main

import (
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/nsf/termbox-go"
	"github.com/sirupsen/logrus"
)

// cursorMargin - сколько клеток держим между курсором и краем окна
const cursorMargin = 4

// terminalUI - рендер и ввод поверх одной игры. Все вызовы из главного цикла.
type terminalUI struct {
	game   *engine.Game
	feed   *Feed
	view   Viewport
	cursor domain.Position
	world  *domain.World // для отслеживания смены уровня
	status string
}

func newTerminalUI(g *engine.Game) *terminalUI {
	ui := &terminalUI{
		game: g,
		feed: newFeed(g.Subscribe("hud"), feedRows),
	}
	ui.resize()
	return ui
}

func runTerminal(cfg engine.Config, frame time.Duration) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	ui := newTerminalUI(engine.NewGame(cfg))
	defer ui.game.Unsubscribe("hud")
	input := pollInput()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev, ok := <-input:
			if !ok || ev.Kind == inputQuit {
				return nil
			}
			if ev.Kind == inputError {
				return ev.Err
			}
			ui.handle(ev)

		case <-ticker.C:
			ui.game.Tick(time.Since(start))
			ui.feed.Pump()
			ui.draw()
		}
	}
}

// resize подгоняет окно карты под размер терминала
func (ui *terminalUI) resize() {
	w, h := termbox.Size()
	ui.view.Width = max(w, 1)
	ui.view.Height = max(h-hudRows-feedRows, 1)
}

func (ui *terminalUI) handle(ev inputEvent) {
	switch ev.Kind {
	case inputResize:
		ui.resize()

	case inputCursor:
		ui.moveCursor(ui.cursor.Add(ev.Delta))

	case inputClick:
		cell, ok := ui.view.ToWorld(ev.MouseX, ev.MouseY)
		if !ok {
			return
		}
		ui.moveCursor(cell)
		ui.execute(ev.Action, &api.PositionPayload{X: cell.X, Y: cell.Y})

	case inputCommand:
		if needsCell(ev.Action) {
			ui.execute(ev.Action, &api.PositionPayload{X: ui.cursor.X, Y: ui.cursor.Y})
			return
		}
		ui.execute(ev.Action, nil)
	}
}

func (ui *terminalUI) moveCursor(p domain.Position) {
	grid := ui.game.World.Grid
	ui.cursor = domain.Position{
		X: min(max(p.X, 0), grid.Width-1),
		Y: min(max(p.Y, 0), grid.Height-1),
	}
	ui.view.Follow(ui.cursor, grid.Width, grid.Height, cursorMargin)
}

// execute упаковывает команду так же, как ее прислал бы любой другой клиент
func (ui *terminalUI) execute(action domain.ActionType, payload any) {
	cc, err := api.NewCommand(action, payload)
	if err != nil {
		ui.status = err.Error()
		return
	}

	res, err := ui.game.Execute(domain.Command{Action: action, Payload: cc.Payload})
	switch {
	case err != nil:
		ui.status = err.Error()
	case res.Applied:
		ui.status = res.Msg
	default:
		ui.status = "Not allowed"
	}
}

func (ui *terminalUI) draw() {
	// Новый уровень: курсор и камера на спавн
	if ui.world != ui.game.World {
		ui.world = ui.game.World
		ui.cursor = ui.world.Spawn
		ui.view.Center(ui.cursor, ui.world.Grid.Width, ui.world.Grid.Height)
		logger.Log.WithFields(logrus.Fields{
			"component": "terminal",
			"level":     ui.world.Level,
		}).Debug("Camera centered on spawn")
	}

	drawFrame(ui.game.Snapshot(), &ui.view, ui.cursor, ui.feed.Lines(), ui.status)
}
