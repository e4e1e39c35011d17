package services

import (
	"context"
	"time"

	"pocketbank/internal/dto"
	"pocketbank/internal/models"

	"github.com/google/uuid"
)

// SessionControllerInterface is the complete set of externally invocable UI
// actions. No other mutation path into the session exists.
type SessionControllerInterface interface {
	// State returns a snapshot of the session for rendering.
	State() dto.SessionState

	// AttemptPasswordLogin checks the login form. The prototype's rule is
	// preserved verbatim: only the fully empty form is granted.
	AttemptPasswordLogin(req dto.LoginRequest) (models.LoginResult, error)

	// AttemptBiometricLogin runs the biometric gate and logs the user in on
	// success. The call suspends until the challenge resolves; concurrent
	// transitions queue behind it.
	AttemptBiometricLogin(ctx context.Context) (models.BiometricLoginResult, error)

	// Logout returns to the login surface, resetting navigation state but
	// keeping user preferences.
	Logout()

	// NavigateTo switches the active screen. Transactions requires an
	// account id that resolves via the data provider.
	NavigateTo(screen models.Screen, accountID *uuid.UUID) error

	// SetBiometricsEnabled and SetSpeechLanguage are preference setters,
	// valid in any state, effective immediately.
	SetBiometricsEnabled(enabled bool)
	SetSpeechLanguage(code string) error

	// InitiateTransfer parses and validates the transfer form, returning an
	// intent awaiting explicit confirmation.
	InitiateTransfer(req dto.TransferRequest) (*dto.TransferIntent, error)

	// ConfirmTransfer completes the pending transfer: announces it and
	// returns to the dashboard. No balances change; the data layer is
	// read-only and transfers are simulated.
	ConfirmTransfer() (models.TransferOutcome, error)

	// CancelTransfer discards the pending transfer, if any.
	CancelTransfer() models.TransferOutcome

	// Announce reads text aloud in the session's speech language.
	Announce(text string)
}

// BiometricGateInterface turns the platform capability check and challenge
// into pass/fail decisions.
type BiometricGateInterface interface {
	CheckAvailability(ctx context.Context) (models.AvailabilityResult, error)
	Authenticate(ctx context.Context, promptText string) (models.AuthenticateResult, error)
}

// SpeechAnnouncerInterface renders text as audio. Fire-and-forget: callers
// never await completion and never see errors.
type SpeechAnnouncerInterface interface {
	Announce(text, languageCode string)
}

// SummaryServiceInterface aggregates the dashboard screen's data.
type SummaryServiceInterface interface {
	GetDashboardSummary() (*dto.DashboardSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SessionLoggerInterface emits structured events for session transitions.
type SessionLoggerInterface interface {
	LogLoginGranted(method string)
	LogLoginRejected(method, reason string)
	LogLogout()
	LogNavigation(from, to models.Screen, accountID string)
	LogNavigationRejected(screen, reason string)
	LogBiometricAvailability(result models.AvailabilityResult)
	LogBiometricChallenge(result models.AuthenticateResult, duration time.Duration)
	LogTransferInitiated(amount string)
	LogTransferConfirmed(amount string)
	LogTransferCancelled()
	LogPreferenceChanged(name, value string)
}
