package main

import (
	"flag"
	"os"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/engine"
	"github.com/AvaTai/Merge-Dwarfs/internal/tuning"
	"github.com/AvaTai/Merge-Dwarfs/internal/version"
	"github.com/AvaTai/Merge-Dwarfs/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг флагов
	var (
		seed       int64
		level      int
		configPath string
		fps        int
		headless   bool
		duration   time.Duration
		script     string
	)
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&level, "level", 1, "Level to start from")
	flag.StringVar(&configPath, "config", "", "Path to tuning YAML (defaults built in)")
	flag.IntVar(&fps, "fps", 60, "Frame cap")
	flag.BoolVar(&headless, "headless", false, "Run without a terminal UI")
	flag.DurationVar(&duration, "duration", 2*time.Minute, "Simulated time for -headless")
	flag.StringVar(&script, "commands", "", "JSONL file with timed commands for -headless")
	flag.Parse()

	logger.Log.Info("Starting Merge Dwarfs...")
	logger.Log.Info(version.String())

	// 2. Конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	cfg.StartLevel = level

	if configPath != "" {
		tun, err := tuning.Load(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load tuning: ", err)
		}
		cfg.Tuning = tun
		logger.Log.Infof("⚙️ Tuning loaded from %s", configPath)
	}

	if fps < 1 {
		fps = 1
	}
	frame := time.Second / time.Duration(fps)

	// 3. Режим без терминала
	if headless {
		logger.Log.Info("🤖 Mode: Headless")
		if err := runHeadless(cfg, frame, duration, script); err != nil {
			logger.Log.Fatal("Headless run failed: ", err)
		}
		return
	}

	// 4. Терминал. Stdout теперь наш, логи уходят в LOG_FILE или никуда.
	logger.Silence()
	if err := runTerminal(cfg, frame); err != nil {
		logger.Log.Error("Terminal UI failed: ", err)
		os.Exit(1)
	}
	logger.Log.Info("Done.")
}
