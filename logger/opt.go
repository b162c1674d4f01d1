package logger

import "log"

// A LoggerOptFn is a functional option configuring a RenderLogger when constructing a new one.
type LoggerOptFn func(*RenderLogger)

// WithEnv sets the environment RenderLogger is operating in.
func WithEnv(env string) func(*RenderLogger) {
	return func(l *RenderLogger) {
		l.env = env
	}
}

// WithLevel sets the log level RenderLogger uses.
func WithLevel(level LogLevel) func(*RenderLogger) {
	return func(l *RenderLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger RenderLogger uses.
func WithLogger(log *log.Logger) func(*RenderLogger) {
	return func(l *RenderLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*RenderLogger) {
	return func(l *RenderLogger) {
		l.skip = skip
	}
}
