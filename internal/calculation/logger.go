package calculation

// Logger receives progress messages from the engine. The default discards them.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}

func (NopLogger) Infof(string, ...any) {}

func (NopLogger) Warnf(string, ...any) {}

func (NopLogger) Errorf(string, ...any) {}

// scenarioLogger prefixes every message with the scenario name.
type scenarioLogger struct {
	next Logger
	name string
}

func withScenario(l Logger, name string) Logger {
	if _, ok := l.(NopLogger); ok {
		return l
	}
	return scenarioLogger{next: l, name: name}
}

func (s scenarioLogger) withName(args []any) []any {
	return append([]any{s.name}, args...)
}

func (s scenarioLogger) Debugf(format string, args ...any) {
	s.next.Debugf("[%s] "+format, s.withName(args)...)
}

func (s scenarioLogger) Infof(format string, args ...any) {
	s.next.Infof("[%s] "+format, s.withName(args)...)
}

func (s scenarioLogger) Warnf(format string, args ...any) {
	s.next.Warnf("[%s] "+format, s.withName(args)...)
}

func (s scenarioLogger) Errorf(format string, args ...any) {
	s.next.Errorf("[%s] "+format, s.withName(args)...)
}
