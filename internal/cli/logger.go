package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/compound-interest/internal/calculation"
)

// slogLogger adapts a slog.Logger to the calculation Logger interface.
type slogLogger struct {
	l *slog.Logger
}

var _ calculation.Logger = slogLogger{}

func newLogger(w io.Writer, verbose bool) slogLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slogLogger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (s slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s slogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s slogLogger) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

func (s slogLogger) Errorf(format string, args ...any) {
	s.l.Error(fmt.Sprintf(format, args...))
}
