package models

import (
	"github.com/google/uuid"
)

// LoginResult is the outcome of a password login attempt.
type LoginResult string

const (
	LoginGranted  LoginResult = "granted"
	LoginRejected LoginResult = "rejected"
)

// BiometricLoginResult is the outcome of a biometric login attempt as
// presented to the user.
type BiometricLoginResult string

const (
	BiometricGranted     BiometricLoginResult = "granted"
	BiometricDenied      BiometricLoginResult = "denied"
	BiometricUnavailable BiometricLoginResult = "unavailable"
)

// AvailabilityResult is the outcome of the biometric capability check.
// NoHardware and NotEnrolled are kept distinct for diagnostics even though
// both surface as "unavailable" to the user.
type AvailabilityResult string

const (
	BiometricAvailable   AvailabilityResult = "available"
	BiometricNoHardware  AvailabilityResult = "no_hardware"
	BiometricNotEnrolled AvailabilityResult = "not_enrolled"
)

// AuthenticateResult is the outcome of the biometric challenge itself.
type AuthenticateResult string

const (
	AuthenticateGranted AuthenticateResult = "granted"
	AuthenticateDenied  AuthenticateResult = "denied"
	AuthenticateError   AuthenticateResult = "error"
)

// TransferOutcome is the final result of the two-step transfer interaction.
type TransferOutcome string

const (
	TransferConfirmed TransferOutcome = "confirmed"
	TransferInvalid   TransferOutcome = "invalid"
	TransferCancelled TransferOutcome = "cancelled"
)

// Session is the in-memory record of login status, current screen, selected
// account and user preferences. It is mutated only through session controller
// transitions; there is no persistence across restarts.
type Session struct {
	LoggedIn          bool
	ActiveScreen      Screen
	SelectedAccountID *uuid.UUID

	// User preferences. These survive logout within the same process
	// lifetime; they are not session state proper.
	BiometricsEnabled bool
	SpeechLanguage    string
}

// NewSession creates a session in its initial state: logged out, dashboard
// as the pending screen, no account selected.
func NewSession(biometricsEnabled bool, speechLanguage string) *Session {
	return &Session{
		LoggedIn:          false,
		ActiveScreen:      ScreenDashboard,
		SelectedAccountID: nil,
		BiometricsEnabled: biometricsEnabled,
		SpeechLanguage:    speechLanguage,
	}
}

// ResetNavigation forces the navigation fields back to their initial values.
// Preferences are intentionally left untouched.
func (s *Session) ResetNavigation() {
	s.LoggedIn = false
	s.ActiveScreen = ScreenDashboard
	s.SelectedAccountID = nil
}

// Clone returns a copy of the session safe to hand to the presentation layer.
func (s *Session) Clone() Session {
	out := *s
	if s.SelectedAccountID != nil {
		id := *s.SelectedAccountID
		out.SelectedAccountID = &id
	}
	return out
}
