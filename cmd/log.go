package cmd

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger returns the application logger, built on first use from the -v flag.
var Logger = sync.OnceValue(func() *zap.Logger {
	log, err := newLogger(*Verbose)
	if err != nil {
		return zap.NewNop()
	}
	return log
})

// newLogger returns a console logger on stderr, at info level or at debug
// level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
	}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
