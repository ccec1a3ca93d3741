package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a new logger with the specified log level
func New(level string) *logrus.Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput is New writing to out
func NewWithOutput(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(out)

	return logger
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	return NewWithOutput("panic", io.Discard)
}
