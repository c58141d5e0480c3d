package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/brayton/pkg/log"
)

// Logger returns the CLI's console logger on stderr at the given level.
// An unparsable level falls back to info.
func Logger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return log.NewConsoleLogger(os.Stderr, lvl)
}
