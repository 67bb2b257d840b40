package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine"
	"github.com/AvaTai/Merge-Dwarfs/internal/notify"
	"github.com/AvaTai/Merge-Dwarfs/pkg/api"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/sirupsen/logrus"
)

// runHeadless гоняет симуляцию без терминала с шагом frame до duration.
// Команды сценария применяются перед первым кадром, чье время >= at_ms.
func runHeadless(cfg engine.Config, frame, duration time.Duration, scriptPath string) error {
	var script []api.ClientCommand
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		script, err = loadScript(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", scriptPath, err)
		}
		logger.Log.Infof("📜 Loaded %d scripted commands", len(script))
	}

	g := engine.NewGame(cfg)
	events := g.Subscribe("headless")
	simulate(g, events, script, frame, duration)
	g.Unsubscribe("headless")

	run := g.World.Run
	logger.Log.WithFields(logrus.Fields{
		"component": "headless",
		"level":     g.World.Level,
		"gold":      run.Gold,
		"chests":    fmt.Sprintf("%d/%d", run.ChestsFound, run.TotalChests),
		"dwarves":   g.World.LivingDwarves(),
		"game_over": run.GameOver,
		"won":       run.Won,
	}).Info("🏁 Simulation finished")
	return nil
}

// simulate - цикл кадров без привязки к реальному времени
func simulate(g *engine.Game, events <-chan domain.Event, script []api.ClientCommand, frame, duration time.Duration) {
	next := 0
	for now := frame; now <= duration; now += frame {
		for next < len(script) && script[next].AtMs <= now.Milliseconds() {
			applyScripted(g, script[next])
			next++
		}
		g.Tick(now)
		logEvents(notify.Drain(events))
	}
}

func applyScripted(g *engine.Game, cc api.ClientCommand) {
	cmd := domain.Command{Action: domain.ParseAction(cc.Action), Payload: cc.Payload}
	res, err := g.Execute(cmd)

	entry := logger.Log.WithFields(logrus.Fields{
		"component": "headless",
		"action":    cc.Action,
		"at_ms":     cc.AtMs,
	})
	switch {
	case err != nil:
		entry.WithError(err).Warn("Scripted command failed")
	case res.Applied:
		entry.Debug(res.Msg)
	default:
		entry.Debug("Scripted command rejected")
	}
}

func logEvents(evs []domain.Event) {
	for _, ev := range evs {
		entry := logger.Log.WithFields(logrus.Fields{
			"component": "headless",
			"event":     ev.Type.String(),
			"at_ms":     ev.At.Milliseconds(),
			"pos":       ev.Pos,
		})
		switch ev.Type {
		case domain.EventLevelWon, domain.EventLevelLost, domain.EventLevelStarted:
			entry.WithField("level", ev.Level).Info("Level event")
		default:
			entry.Debug("Event")
		}
	}
}

// loadScript читает JSONL: одна команда на строку, пустые строки и # пропускаются.
// Неизвестное действие - ошибка с номером строки. Порядок по at_ms стабильный.
func loadScript(r io.Reader) ([]api.ClientCommand, error) {
	var out []api.ClientCommand
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}

		var cc api.ClientCommand
		if err := json.Unmarshal(raw, &cc); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if domain.ParseAction(cc.Action) == domain.ActionUnknown {
			return nil, fmt.Errorf("line %d: unknown action %q", line, cc.Action)
		}
		if cc.AtMs < 0 {
			return nil, fmt.Errorf("line %d: negative at_ms", line)
		}
		out = append(out, cc)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].AtMs < out[j].AtMs })
	return out, nil
}
