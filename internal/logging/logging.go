// Package logging собирает логгер процесса: zerolog в stdout
// с временем, именем логгера, уровнем и сообщением.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	Name       = "homework_bot"
	timeFormat = "2006-01-02 15:04:05"
)

// New возвращает логгер в stdout с заданным уровнем.
func New(level string) (zerolog.Logger, error) {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.DebugLevel
	if level = strings.TrimSpace(level); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timeFormat,
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("logger", Name).
		Logger(), nil
}

// BotLogger пропускает логи tgbotapi через zerolog.
type BotLogger struct {
	log zerolog.Logger
}

func NewBotLogger(log zerolog.Logger) *BotLogger {
	return &BotLogger{log: log.With().Str("component", "tgbotapi").Logger()}
}

func (l *BotLogger) Println(v ...interface{}) {
	l.log.Debug().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l *BotLogger) Printf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
