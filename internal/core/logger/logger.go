package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the development logger shared by every component. Output
// goes to stderr so it never mixes with command output.
func NewLogger(verbose bool) *zap.Logger {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.OutputPaths = []string{"stderr"}
	if !verbose {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := loggerConfig.Build()
	if nil != err {
		panic(err)
	}

	return logger
}
