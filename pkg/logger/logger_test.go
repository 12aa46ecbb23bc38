package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("oculto")
	l.Warn().Str("component", "guard").Msg("visible")

	assert.NotContains(t, buf.String(), "oculto")
	assert.Contains(t, buf.String(), `"component":"guard"`)
	assert.Contains(t, buf.String(), `"message":"visible"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel(" DEBUG "))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruido"))
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}

func TestNew_DevelopmentEscribeEnConsola(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "development", Output: &buf})

	l.Info().Msg("panel listo")

	assert.Contains(t, buf.String(), "panel listo")
	assert.NotContains(t, buf.String(), `"message"`)
}
