package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a slog logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	return newBufferLogger(slog.LevelInfo)
}

// NewDebugBufferLogger is NewBufferLogger at debug level, for per-fetch and per-resolution logs.
func NewDebugBufferLogger() (*slog.Logger, *bytes.Buffer) {
	return newBufferLogger(slog.LevelDebug)
}

func newBufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return logger, &buf
}
