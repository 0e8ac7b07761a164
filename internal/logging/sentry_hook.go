package logging

import (
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// SentryHook forwards error-and-above log entries to Sentry.
type SentryHook struct {
	levels []log.Level
}

func NewSentryHook(levels []log.Level) *SentryHook {
	return &SentryHook{levels: levels}
}

func (h *SentryHook) Levels() []log.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *log.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time
	for k, v := range entry.Data {
		event.Extra[k] = v
	}
	sentry.CaptureEvent(event)
	return nil
}

func sentryLevel(level log.Level) sentry.Level {
	switch level {
	case log.PanicLevel, log.FatalLevel:
		return sentry.LevelFatal
	case log.ErrorLevel:
		return sentry.LevelError
	case log.WarnLevel:
		return sentry.LevelWarning
	default:
		return sentry.LevelInfo
	}
}
