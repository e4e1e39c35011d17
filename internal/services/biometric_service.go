package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pocketbank/internal/device"
	"pocketbank/internal/models"
)

// biometricGate implements BiometricGateInterface over a platform authenticator
type biometricGate struct {
	auth    device.Authenticator
	metrics MetricsRecorderInterface
	logger  SessionLoggerInterface
}

// NewBiometricGate wraps a platform authenticator into the two-phase gate.
func NewBiometricGate(auth device.Authenticator, metrics MetricsRecorderInterface, logger *slog.Logger) BiometricGateInterface {
	return &biometricGate{
		auth:    auth,
		metrics: metrics,
		logger:  NewSessionLogger(logger),
	}
}

// CheckAvailability runs the capability phase: hardware present, then user
// enrolled. The distinction between the two failures is preserved here for
// diagnostics even though the user sees them uniformly as "unavailable".
func (g *biometricGate) CheckAvailability(ctx context.Context) (models.AvailabilityResult, error) {
	hasHardware, err := g.auth.HasHardware(ctx)
	if err != nil {
		return "", fmt.Errorf("hardware check failed: %w", err)
	}
	if !hasHardware {
		g.metrics.IncrementCounter("biometric.availability", map[string]string{"result": string(models.BiometricNoHardware)})
		return models.BiometricNoHardware, nil
	}

	enrolled, err := g.auth.IsEnrolled(ctx)
	if err != nil {
		return "", fmt.Errorf("enrollment check failed: %w", err)
	}
	if !enrolled {
		g.metrics.IncrementCounter("biometric.availability", map[string]string{"result": string(models.BiometricNotEnrolled)})
		return models.BiometricNotEnrolled, nil
	}

	g.metrics.IncrementCounter("biometric.availability", map[string]string{"result": string(models.BiometricAvailable)})
	return models.BiometricAvailable, nil
}

// Authenticate runs the challenge phase and times it.
func (g *biometricGate) Authenticate(ctx context.Context, promptText string) (models.AuthenticateResult, error) {
	start := time.Now()
	passed, err := g.auth.Authenticate(ctx, promptText)
	duration := time.Since(start)

	g.metrics.RecordProcessingTime("biometric.challenge", duration)

	result := models.AuthenticateGranted
	switch {
	case err != nil:
		result = models.AuthenticateError
	case !passed:
		result = models.AuthenticateDenied
	}
	g.logger.LogBiometricChallenge(result, duration)

	if err != nil {
		return models.AuthenticateError, fmt.Errorf("challenge failed: %w", err)
	}
	return result, nil
}
