package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitattrib/internal/logging"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logging.New(logging.Options{}).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, logging.New(logging.Options{Verbose: true}).GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, logging.New(logging.Options{Quiet: true}).GetLevel())

	// Quiet wins over verbose.
	assert.Equal(t, zerolog.ErrorLevel, logging.New(logging.Options{Verbose: true, Quiet: true}).GetLevel())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}

	for input, expected := range cases {
		level, err := logging.ParseLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, level)
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := logging.ParseLevel("chatty")

	assert.Error(t, err)
}
