package adapters

import (
	"fmt"
	"log/slog"
)

// SlogLoggerAdapter bridges a *slog.Logger into the LoggerAdapter
// interface, prepending "[Beacon]" to every message so telemetry lines
// are easy to filter out of host application logs.
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// Ensure SlogLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*SlogLoggerAdapter)(nil)

// NewSlogLoggerAdapter creates a LoggerAdapter backed by the given slog logger.
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: logger}
}

func (s *SlogLoggerAdapter) Debug(message string, args ...any) {
	s.logger.Debug("[Beacon] " + fmt.Sprintf(message, args...))
}

func (s *SlogLoggerAdapter) Info(message string, args ...any) {
	s.logger.Info("[Beacon] " + fmt.Sprintf(message, args...))
}

func (s *SlogLoggerAdapter) Warn(message string, args ...any) {
	s.logger.Warn("[Beacon] " + fmt.Sprintf(message, args...))
}

func (s *SlogLoggerAdapter) Error(message string, args ...any) {
	s.logger.Error("[Beacon] " + fmt.Sprintf(message, args...))
}
