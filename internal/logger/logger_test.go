package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, SetupLogger(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetupLogger(true).GetLevel())
}
