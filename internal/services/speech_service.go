package services

import (
	"log/slog"

	"pocketbank/internal/device"

	"golang.org/x/text/language"
)

// speechAnnouncer implements SpeechAnnouncerInterface over a speech engine
type speechAnnouncer struct {
	engine  device.SpeechEngine
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewSpeechAnnouncer wraps a speech engine into the fire-and-forget announcer.
func NewSpeechAnnouncer(engine device.SpeechEngine, metrics MetricsRecorderInterface, logger *slog.Logger) SpeechAnnouncerInterface {
	return &speechAnnouncer{
		engine:  engine,
		metrics: metrics,
		logger:  logger,
	}
}

// Announce renders the text without blocking the caller. Engine failures are
// swallowed: a missed announcement never gates a transition and there is
// nobody to report it to beyond the debug log.
func (a *speechAnnouncer) Announce(text, languageCode string) {
	resolved := a.resolveLanguage(languageCode)
	a.metrics.IncrementCounter("speech.announced", map[string]string{"language": resolved})

	go func() {
		if err := a.engine.Speak(text, resolved); err != nil {
			a.logger.Debug("speech engine failed",
				slog.String("event_type", "speech_failed"),
				slog.String("language", resolved),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// resolveLanguage matches the requested code against the engine's supported
// set. Malformed or unmatchable codes fall back to the engine default, which
// is its first supported language.
func (a *speechAnnouncer) resolveLanguage(code string) string {
	supported := a.engine.SupportedLanguages()
	if len(supported) == 0 {
		return code
	}

	requested, err := language.Parse(code)
	if err != nil {
		return supported[0]
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return supported[0]
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}
