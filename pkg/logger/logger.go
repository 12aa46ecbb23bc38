// Package logger arma el zerolog compartido por el servidor del panel y por
// panelctl. Los componentes reciben el zerolog.Logger de Zerolog() y agregan
// su propio campo "component".
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida y nivel del log.
//
// El servidor escribe en stdout. panelctl pasa os.Stderr en Output para que
// stdout quede limpio con las tablas y el JSON que imprime.
type Config struct {
	Env    string // APP_ENV; "development" escribe en consola con hora corta
	Level  string // LOG_LEVEL; un valor desconocido cae en info
	Output io.Writer
}

// Logger envuelve el zerolog raíz del proceso.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger raíz y lo deja también como log.Logger global.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
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

// Eventos del ciclo de vida del proceso: arranque, apagado, fallos del listener.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Zerolog logger que se inyecta en cliente, guard, registry y handlers.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
