package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger обёртка над zerolog с printf-style API
// Компоненты сервиса зависят от собственных узких интерфейсов Logger,
// эта структура является их единственной реализацией в production
type Logger struct {
	log  zerolog.Logger
	file *os.File
}

// New создает логгер с выводом в stdout и опционально в файл
// level: debug | info | warn | error (по умолчанию info)
func New(filePath string, level string) (*Logger, error) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}}

	var file *os.File
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		file = f
		writers = append(writers, f)
	}

	log := zerolog.New(io.MultiWriter(writers...)).
		Level(parseLevel(level)).
		With().Timestamp().Logger()

	return &Logger{log: log, file: file}, nil
}

// parseLevel конвертирует строковый уровень в zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close закрывает файловый sink (если был открыт)
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Info().Msgf(format, v...)
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

// Error логирует ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

// Fatal логирует критическую ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatal().Msgf(format, v...)
}
