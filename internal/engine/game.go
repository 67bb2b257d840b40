package engine

import (
	"fmt"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine/handlers"
	"github.com/AvaTai/Merge-Dwarfs/internal/engine/handlers/actions"
	"github.com/AvaTai/Merge-Dwarfs/internal/notify"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
	"github.com/AvaTai/Merge-Dwarfs/pkg/mine"
	"github.com/AvaTai/Merge-Dwarfs/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Game - оркестратор. Владеет миром уровня целиком и меняет его
// только в Tick и в хендлерах команд. Однопоточный.
type Game struct {
	cfg Config
	tun *tuning.Tuning

	World    *domain.World
	Warnings *WarningQueue
	Hub      *notify.Broadcaster
	Rng      utils.Rand

	Paused  bool
	now     time.Duration
	attempt int // номер перезапуска текущего уровня

	handlers map[domain.ActionType]handlers.HandlerFunc
}

// NewGame создает игру и сразу генерирует стартовый уровень
func NewGame(cfg Config) *Game {
	g := newGame(cfg)
	g.StartLevel(cfg.StartLevel)
	return g
}

func newGame(cfg Config) *Game {
	tun := cfg.Tuning
	return &Game{
		cfg:      cfg,
		tun:      &tun,
		Warnings: NewWarningQueue(),
		Hub:      notify.NewBroadcaster(),
		handlers: actions.Registry(),
	}
}

// Tuning возвращает активные константы
func (g *Game) Tuning() *tuning.Tuning {
	return g.tun
}

// Now - время последнего кадра
func (g *Game) Now() time.Duration {
	return g.now
}

// Subscribe подписывает коллаборатора на события симуляции.
// Повторная подписка под тем же именем закрывает старый канал.
func (g *Game) Subscribe(name string) <-chan domain.Event {
	replaced := g.Hub.HasSubscriber(name)
	ch := g.Hub.Register(name)
	logger.Log.WithFields(logrus.Fields{
		"component":   "game",
		"subscriber":  name,
		"replaced":    replaced,
		"subscribers": g.Hub.SubscriberCount(),
	}).Debug("Subscriber registered")
	return ch
}

// Unsubscribe отписывает коллаборатора и закрывает его канал
func (g *Game) Unsubscribe(name string) {
	g.Hub.Unregister(name)
	logger.Log.WithFields(logrus.Fields{
		"component":   "game",
		"subscriber":  name,
		"subscribers": g.Hub.SubscriberCount(),
	}).Debug("Subscriber removed")
}

// StartLevel атомарно заменяет мир новым уровнем
func (g *Game) StartLevel(level int) {
	level = max(level, 1)
	if g.World == nil || g.World.Level != level {
		g.attempt = 0
	} else {
		g.attempt++
	}

	rng := utils.NewRand(utils.LevelSeed(g.cfg.Seed, level, g.attempt))
	world := mine.Generate(level, rng, g.tun, g.now)
	g.install(world, rng)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"level":     level,
		"attempt":   g.attempt,
		"chests":    world.Run.TotalChests,
		"size":      fmt.Sprintf("%dx%d", world.Grid.Width, world.Grid.Height),
	}).Info("⛏️ Level started")

	g.emit(domain.Event{Type: domain.EventLevelStarted, Level: level, Count: world.Run.TotalChests})
}

// RestartLevel начинает текущий уровень заново (новая карта)
func (g *Game) RestartLevel() {
	g.StartLevel(g.World.Level)
}

// Continue - реакция на "Enter" после конца уровня.
// Возвращает false, если уровень еще идет.
func (g *Game) Continue() bool {
	run := g.World.Run
	if !run.GameOver {
		return false
	}
	if run.Won {
		g.StartLevel(g.World.Level + 1)
	} else {
		g.RestartLevel()
	}
	return true
}

// TogglePause переключает паузу и возвращает новое значение
func (g *Game) TogglePause() bool {
	g.Paused = !g.Paused
	return g.Paused
}

// install ставит готовый мир и генератор случайных чисел уровня
func (g *Game) install(world *domain.World, rng utils.Rand) {
	g.World = world
	g.Rng = rng
	g.Paused = false
	g.Warnings.Reset()
}

// Execute применяет команду игрока.
// Ошибка - только для неизвестной команды или битого payload.
func (g *Game) Execute(cmd domain.Command) (handlers.Result, error) {
	handler, ok := g.handlers[cmd.Action]
	if !ok {
		return handlers.Result{}, fmt.Errorf("%w: %s", handlers.ErrUnknownAction, cmd.Action)
	}

	ctx := handlers.Context{
		World:   g.World,
		Tuning:  g.tun,
		Control: g,
	}
	res, err := handler(ctx, cmd.Payload)

	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"action":    cmd.Action.String(),
	})
	if err != nil {
		cmdLogger.WithError(err).Warn("Command failed")
		return res, err
	}
	if !res.Applied {
		cmdLogger.Debug("Command rejected")
	}
	return res, nil
}

func (g *Game) emit(ev domain.Event) {
	if ev.At == 0 {
		ev.At = g.now
	}
	g.Hub.Publish(ev)
}
