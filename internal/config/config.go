package config

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const EnvironmentVariable = "PLAYGROUND_ENVIRONMENT"

const DefaultEnvironment = "development"
const DevelopmentEnvironment = "development"

var knownEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// The environment is resolved on first use and then fixed for the process.
var (
	environmentOnce    sync.Once
	currentEnvironment string
)

// GetCurrentEnvironment returns the environment the cli is running in, read
// from PLAYGROUND_ENVIRONMENT and defaulting to development for missing or
// unknown values.
func GetCurrentEnvironment() string {
	environmentOnce.Do(func() {
		currentEnvironment = DefaultEnvironment

		if env := os.Getenv(EnvironmentVariable); knownEnvironments[env] {
			currentEnvironment = env
		}
	})

	return currentEnvironment
}

// GetCurrentOs reports "windows" on windows and "linux" everywhere else, the
// only distinction the console logger cares about.
func GetCurrentOs() string {
	if strings.EqualFold(runtime.GOOS, "windows") {
		return "windows"
	}

	return "linux"
}

// NewLogger builds the cli logger. Development gets human readable console
// output, every other environment gets json lines. Debug events, including
// the per request events of the playground client, are only written when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel

	if verbose {
		level = zerolog.DebugLevel
	}

	if GetCurrentEnvironment() == DevelopmentEnvironment {
		w = zerolog.ConsoleWriter{Out: w, NoColor: GetCurrentOs() == "windows"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
