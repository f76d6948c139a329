package handlers

import (
	"recallhub/internal/shared/logger"
)

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, args ...any)                   {}
func (l *noopLogger) Info(msg string, args ...any)                    {}
func (l *noopLogger) Warn(msg string, args ...any)                    {}
func (l *noopLogger) Error(msg string, args ...any)                   {}
func (l *noopLogger) With(args ...any) logger.Interface               { return l }
func (l *noopLogger) Named(name string) logger.Interface              { return l }
func (l *noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
