package badger

import (
	"fmt"
	"log/slog"
	"strings"
)

// logger bridges badger.Logger onto slog.
type logger struct {
	logger *slog.Logger
}

func newLogger(l *slog.Logger) *logger {
	return &logger{logger: l.With(slog.String("component", "badger"))}
}

func (l *logger) Errorf(format string, args ...any) {
	l.logger.Error(message(format, args))
}

func (l *logger) Warningf(format string, args ...any) {
	l.logger.Warn(message(format, args))
}

func (l *logger) Infof(format string, args ...any) {
	l.logger.Info(message(format, args))
}

func (l *logger) Debugf(format string, args ...any) {
	l.logger.Debug(message(format, args))
}

func message(format string, args []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
