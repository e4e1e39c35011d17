// Package device holds the platform capability engines the app core depends
// on: biometric hardware and text-to-speech. The prototype ships simulated
// engines; on a real device these would bind to the platform APIs.
package device

import "context"

// Authenticator is the raw biometric capability: a two-phase availability
// check (hardware present, user enrolled) followed by a challenge. All calls
// may suspend on a platform call, hence the contexts.
type Authenticator interface {
	HasHardware(ctx context.Context) (bool, error)
	IsEnrolled(ctx context.Context) (bool, error)

	// Authenticate runs the challenge with the given prompt and reports
	// whether the user passed it.
	Authenticate(ctx context.Context, promptText string) (bool, error)
}

// SpeechEngine renders text as audio in the given language.
type SpeechEngine interface {
	// Speak renders the text. The language code has already been resolved
	// against SupportedLanguages by the caller.
	Speak(text, languageCode string) error

	// SupportedLanguages lists the BCP 47 codes the engine can render.
	// The first entry is the engine default.
	SupportedLanguages() []string
}
