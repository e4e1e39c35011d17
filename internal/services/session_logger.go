package services

import (
	"log/slog"
	"time"

	"pocketbank/internal/models"
)

type SessionLogger struct {
	logger *slog.Logger
}

func NewSessionLogger(logger *slog.Logger) SessionLoggerInterface {
	return &SessionLogger{
		logger: logger,
	}
}

func (sl *SessionLogger) LogLoginGranted(method string) {
	sl.logger.Info("login granted",
		slog.String("event_type", "login_granted"),
		slog.String("method", method),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogLoginRejected(method, reason string) {
	sl.logger.Warn("login rejected",
		slog.String("event_type", "login_rejected"),
		slog.String("method", method),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogLogout() {
	sl.logger.Info("logout",
		slog.String("event_type", "logout"),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogNavigation(from, to models.Screen, accountID string) {
	sl.logger.Info("navigation",
		slog.String("event_type", "navigation"),
		slog.String("from_screen", from.String()),
		slog.String("to_screen", to.String()),
		slog.String("account_id", accountID),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogNavigationRejected(screen, reason string) {
	sl.logger.Warn("navigation rejected",
		slog.String("event_type", "navigation_rejected"),
		slog.String("screen", screen),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogBiometricAvailability(result models.AvailabilityResult) {
	sl.logger.Info("biometric availability check",
		slog.String("event_type", "biometric_availability"),
		slog.String("result", string(result)),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogBiometricChallenge(result models.AuthenticateResult, duration time.Duration) {
	sl.logger.Info("biometric challenge",
		slog.String("event_type", "biometric_challenge"),
		slog.String("result", string(result)),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogTransferInitiated(amount string) {
	sl.logger.Info("transfer initiated",
		slog.String("event_type", "transfer_initiated"),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogTransferConfirmed(amount string) {
	sl.logger.Info("transfer confirmed",
		slog.String("event_type", "transfer_confirmed"),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogTransferCancelled() {
	sl.logger.Info("transfer cancelled",
		slog.String("event_type", "transfer_cancelled"),
		slog.Time("timestamp", time.Now()),
	)
}

func (sl *SessionLogger) LogPreferenceChanged(name, value string) {
	sl.logger.Info("preference changed",
		slog.String("event_type", "preference_changed"),
		slog.String("preference", name),
		slog.String("value", value),
		slog.Time("timestamp", time.Now()),
	)
}
