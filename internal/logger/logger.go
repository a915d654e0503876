package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func SetupLogger(debug bool) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	return &zlog
}
