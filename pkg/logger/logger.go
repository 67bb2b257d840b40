package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Log = logrus.New()

	// 1. Устанавливаем уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Устанавливаем форматтер.
	// "json" - для сбора логов, "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать. Терминальный интерфейс занимает stdout,
	// поэтому LOG_FILE позволяет увести логи в файл.
	Log.SetOutput(os.Stdout)
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.WithError(err).Warn("⚠️ Cannot open LOG_FILE, logging to stdout")
			return
		}
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
		if logFormat == "json" {
			Log.SetFormatter(&logrus.JSONFormatter{})
		}
		Log.SetOutput(f)
	}
}

// Silence отключает вывод, если логи некуда писать (LOG_FILE не задан)
func Silence() {
	if os.Getenv("LOG_FILE") == "" {
		Log.SetOutput(io.Discard)
	}
}
