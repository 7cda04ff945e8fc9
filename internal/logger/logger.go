package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

type Logger struct {
	logger *logrus.Logger
}

// NewLogger returns a logger writing text formatted entries to out, discarding entries below the given level.
// Valid levels are the logrus level names, e.g., "debug", "info" or "warn".
func NewLogger(out io.Writer, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &Logger{
		logger,
	}, nil
}

func (l *Logger) Debug(msg string, fields Fields) {
	l.logger.WithFields(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields Fields) {
	l.logger.WithFields(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.logger.WithFields(fields).Warn(msg)
}

func (l *Logger) Error(msg string, fields Fields) {
	l.logger.WithFields(fields).Error(msg)
}
