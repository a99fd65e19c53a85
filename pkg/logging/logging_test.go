package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default is warn", 0, zerolog.WarnLevel},
		{"v is info", 1, zerolog.InfoLevel},
		{"vv is debug", 2, zerolog.DebugLevel},
		{"vvv is trace", 3, zerolog.TraceLevel},
		{"beyond vvv stays trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("relocation")
	// Must be usable without further setup
	logger.Debug().Str("pattern", "org.foo").Msg("test message")
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.Contains(t, path, "shade")
	assert.Contains(t, path, "shade.log")
}
