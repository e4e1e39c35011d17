package device

import (
	"context"
	"log/slog"
	"time"

	"pocketbank/internal/config"
)

// SimulatedAuthenticator fakes biometric hardware for the demo. Its behavior
// is driven entirely by configuration so every gate outcome can be exercised.
type SimulatedAuthenticator struct {
	hardware bool
	enrolled bool
	grant    bool
	delay    time.Duration
}

func NewSimulatedAuthenticator(cfg *config.BiometricsConfig) *SimulatedAuthenticator {
	return &SimulatedAuthenticator{
		hardware: cfg.HardwarePresent,
		enrolled: cfg.Enrolled,
		grant:    cfg.GrantChallenge,
		delay:    cfg.ChallengeDelay,
	}
}

func (a *SimulatedAuthenticator) HasHardware(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.hardware, nil
}

func (a *SimulatedAuthenticator) IsEnrolled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.enrolled, nil
}

// Authenticate waits out the configured challenge delay to mimic the user
// presenting a fingerprint or face, then reports the configured outcome.
func (a *SimulatedAuthenticator) Authenticate(ctx context.Context, promptText string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(a.delay):
	}
	return a.grant, nil
}

// LoggedSpeechEngine is a speech engine that logs the spoken line instead of
// producing audio. Good enough for a terminal demo and for tests.
type LoggedSpeechEngine struct {
	logger    *slog.Logger
	languages []string
}

func NewLoggedSpeechEngine(logger *slog.Logger, languages []string) *LoggedSpeechEngine {
	if len(languages) == 0 {
		languages = []string{"en-US"}
	}
	return &LoggedSpeechEngine{
		logger:    logger,
		languages: languages,
	}
}

func (e *LoggedSpeechEngine) Speak(text, languageCode string) error {
	e.logger.Info("speaking",
		slog.String("event_type", "speech_rendered"),
		slog.String("language", languageCode),
		slog.String("text", text),
	)
	return nil
}

func (e *LoggedSpeechEngine) SupportedLanguages() []string {
	return e.languages
}
