// Package debuglog builds the optional structured trace logger.
//
// The prompt hook's stdout and stderr have contractual meaning to the
// host, so structured tracing stays off unless explicitly requested
// and only ever writes to stderr.
package debuglog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar enables tracing without a flag, for hook invocations where
// the command line is fixed in settings.json.
const EnvVar = "ZENHOOK_DEBUG"

// Enabled reports whether tracing was requested via the environment.
func Enabled() bool {
	return os.Getenv(EnvVar) != ""
}

// New returns a debug-level logger writing to stderr when enabled is
// true, and a no-op logger otherwise.
func New(enabled bool) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
