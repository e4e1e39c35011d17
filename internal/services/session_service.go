package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pocketbank/internal/dto"
	apperrors "pocketbank/internal/errors"
	"pocketbank/internal/models"
	"pocketbank/internal/repositories"
	"pocketbank/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCredentialRejected    = apperrors.New(apperrors.AuthCredentialRejected)
	ErrBiometricUnavailable  = apperrors.New(apperrors.AuthBiometricUnavailable)
	ErrBiometricDenied       = apperrors.New(apperrors.AuthBiometricDenied)
	ErrInvalidNavigation     = apperrors.New(apperrors.NavInvalidNavigation)
	ErrAccountNotFound       = apperrors.New(apperrors.NavAccountNotFound)
	ErrUnknownScreen         = apperrors.New(apperrors.NavUnknownScreen)
	ErrInvalidTransferAmount = apperrors.New(apperrors.TransferInvalidAmount)
	ErrNoPendingTransfer     = apperrors.New(apperrors.TransferNoPending)
	ErrInvalidSpeechLanguage = apperrors.New(apperrors.ValidationInvalidLanguage)
)

const transferCompleteText = "Transfer Complete"

// sessionService implements SessionControllerInterface
type sessionService struct {
	// mu serializes every transition. The UI is single-threaded in spirit:
	// a biometric attempt holds the lock while it awaits the platform, so
	// concurrent input queues behind it instead of racing the transition.
	mu sync.Mutex

	session         *models.Session
	pendingTransfer *dto.TransferIntent

	accounts   repositories.AccountDataProviderInterface
	biometrics BiometricGateInterface
	speech     SpeechAnnouncerInterface
	validator  *validation.Validator
	metrics    MetricsRecorderInterface
	logger     SessionLoggerInterface
	promptText string
}

// NewSessionController creates the session controller in its initial state:
// logged out, dashboard pending, nothing selected.
func NewSessionController(
	accounts repositories.AccountDataProviderInterface,
	biometrics BiometricGateInterface,
	speech SpeechAnnouncerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	biometricsEnabled bool,
	speechLanguage string,
	promptText string,
) SessionControllerInterface {
	return &sessionService{
		session:    models.NewSession(biometricsEnabled, speechLanguage),
		accounts:   accounts,
		biometrics: biometrics,
		speech:     speech,
		validator:  validation.GetValidator(),
		metrics:    metrics,
		logger:     NewSessionLogger(logger),
		promptText: promptText,
	}
}

// State returns a snapshot of the session for rendering.
func (s *sessionService) State() dto.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session.Clone()
	state := dto.SessionState{
		LoggedIn:          session.LoggedIn,
		ActiveScreen:      session.ActiveScreen,
		SelectedAccountID: session.SelectedAccountID,
		BiometricsEnabled: session.BiometricsEnabled,
		SpeechLanguage:    session.SpeechLanguage,
	}
	if s.pendingTransfer != nil {
		pending := *s.pendingTransfer
		state.PendingTransfer = &pending
	}
	return state
}

// AttemptPasswordLogin checks the login form against the prototype's rule:
// the login succeeds only when both fields are empty strings. This is a demo
// stub carried over deliberately, not a bug to fix here.
func (s *sessionService) AttemptPasswordLogin(req dto.LoginRequest) (models.LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.LoggedIn {
		// Pressing login twice must not produce a second transition.
		return models.LoginGranted, nil
	}

	if req.Email != "" || req.Password != "" {
		s.logger.LogLoginRejected("password", "credentials rejected")
		s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "password", "outcome": "rejected"})
		return models.LoginRejected, ErrCredentialRejected
	}

	s.enterLoggedIn()
	s.logger.LogLoginGranted("password")
	s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "password", "outcome": "granted"})
	return models.LoginGranted, nil
}

// AttemptBiometricLogin runs the two-phase gate. The availability phase
// collapses NoHardware and NotEnrolled to Unavailable; any platform error
// collapses to Denied with a generic notice. Internals stay in the log.
func (s *sessionService) AttemptBiometricLogin(ctx context.Context) (models.BiometricLoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.LoggedIn {
		return models.BiometricGranted, nil
	}

	if !s.session.BiometricsEnabled {
		s.logger.LogLoginRejected("biometric", "biometrics disabled")
		s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "biometric", "outcome": "unavailable"})
		return models.BiometricUnavailable, ErrBiometricUnavailable
	}

	availability, err := s.biometrics.CheckAvailability(ctx)
	if err != nil {
		s.logger.LogLoginRejected("biometric", fmt.Sprintf("availability check failed: %v", err))
		s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "biometric", "outcome": "denied"})
		return models.BiometricDenied, ErrBiometricDenied
	}
	s.logger.LogBiometricAvailability(availability)
	if availability != models.BiometricAvailable {
		s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "biometric", "outcome": "unavailable"})
		return models.BiometricUnavailable, ErrBiometricUnavailable
	}

	result, err := s.biometrics.Authenticate(ctx, s.promptText)
	if err != nil || result != models.AuthenticateGranted {
		reason := string(result)
		if err != nil {
			reason = fmt.Sprintf("challenge error: %v", err)
		}
		s.logger.LogLoginRejected("biometric", reason)
		s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "biometric", "outcome": "denied"})
		return models.BiometricDenied, ErrBiometricDenied
	}

	s.enterLoggedIn()
	s.logger.LogLoginGranted("biometric")
	s.metrics.IncrementCounter("login.attempt", map[string]string{"method": "biometric", "outcome": "granted"})
	return models.BiometricGranted, nil
}

// Logout returns to the login surface. Navigation state resets; the
// biometrics and speech preferences survive for the next login.
func (s *sessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.LoggedIn {
		return
	}

	s.session.ResetNavigation()
	s.pendingTransfer = nil
	s.logger.LogLogout()
}

// NavigateTo switches the active screen. Transactions requires an account id
// that resolves via the data provider; every other screen clears the
// selection so it never leaks across screens.
func (s *sessionService) NavigateTo(screen models.Screen, accountID *uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.LoggedIn {
		s.logger.LogNavigationRejected(screen.String(), "not logged in")
		s.metrics.IncrementCounter("navigation.rejected", map[string]string{"reason": "not_logged_in"})
		return ErrInvalidNavigation
	}

	if !models.IsValidScreen(screen.String()) {
		s.logger.LogNavigationRejected(screen.String(), "unknown screen")
		s.metrics.IncrementCounter("navigation.rejected", map[string]string{"reason": "unknown_screen"})
		return ErrUnknownScreen
	}

	from := s.session.ActiveScreen

	if screen.RequiresAccount() {
		if accountID == nil {
			s.logger.LogNavigationRejected(screen.String(), "account id required")
			s.metrics.IncrementCounter("navigation.rejected", map[string]string{"reason": "missing_account"})
			return ErrInvalidNavigation
		}

		if _, err := s.accounts.GetAccountByID(*accountID); err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				s.logger.LogNavigationRejected(screen.String(), "account not found")
				s.metrics.IncrementCounter("navigation.rejected", map[string]string{"reason": "account_not_found"})
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to resolve account: %w", err)
		}

		id := *accountID
		s.session.ActiveScreen = screen
		s.session.SelectedAccountID = &id
	} else {
		s.session.ActiveScreen = screen
		s.session.SelectedAccountID = nil
	}

	// Leaving the transfer screen abandons any half-finished transfer.
	if screen != models.ScreenTransfer {
		s.pendingTransfer = nil
	}

	s.logger.LogNavigation(from, screen, accountIDString(s.session.SelectedAccountID))
	s.metrics.IncrementCounter("navigation", map[string]string{"screen": screen.String()})
	return nil
}

// SetBiometricsEnabled toggles the biometric login preference. Valid in any
// state and effective on the next render.
func (s *sessionService) SetBiometricsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.BiometricsEnabled = enabled
	s.logger.LogPreferenceChanged("biometrics_enabled", fmt.Sprintf("%t", enabled))
	s.metrics.IncrementCounter("preference.changed", map[string]string{"preference": "biometrics_enabled"})
}

// SetSpeechLanguage changes the read-aloud language. The code must be
// well-formed BCP 47; unknown-but-well-formed codes are accepted and fall
// back at announce time.
func (s *sessionService) SetSpeechLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validator.Var(code, "required,speech_language"); err != nil {
		return ErrInvalidSpeechLanguage
	}

	s.session.SpeechLanguage = code
	s.logger.LogPreferenceChanged("speech_language", code)
	s.metrics.IncrementCounter("preference.changed", map[string]string{"preference": "speech_language"})
	return nil
}

// InitiateTransfer validates the transfer form and stages an intent for the
// confirm/cancel step.
func (s *sessionService) InitiateTransfer(req dto.TransferRequest) (*dto.TransferIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.LoggedIn {
		return nil, ErrInvalidNavigation
	}

	if err := s.validator.Struct(&req); err != nil {
		s.metrics.IncrementCounter("transfer", map[string]string{"outcome": "invalid"})
		return nil, ErrInvalidTransferAmount
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		s.metrics.IncrementCounter("transfer", map[string]string{"outcome": "invalid"})
		return nil, ErrInvalidTransferAmount
	}

	intent := &dto.TransferIntent{
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	// The demo transfer form is fixed: from the first account to the second.
	accounts, err := s.accounts.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) > 0 {
		intent.FromAccount = accounts[0].DisplayName
	}
	if len(accounts) > 1 {
		intent.ToAccount = accounts[1].DisplayName
	}

	s.pendingTransfer = intent
	s.logger.LogTransferInitiated(amount.StringFixed(2))

	amountValue, _ := amount.Float64()
	s.metrics.RecordGauge("transfer.amount", amountValue, nil)

	staged := *intent
	return &staged, nil
}

// ConfirmTransfer completes the pending transfer. The data provider is
// read-only, so no balance changes: the transfer is simulated end to end,
// which mirrors the prototype and is documented behavior, not an oversight.
func (s *sessionService) ConfirmTransfer() (models.TransferOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingTransfer == nil {
		return models.TransferInvalid, ErrNoPendingTransfer
	}

	amount := s.pendingTransfer.Amount
	s.pendingTransfer = nil

	s.speech.Announce(transferCompleteText, s.session.SpeechLanguage)

	from := s.session.ActiveScreen
	s.session.ActiveScreen = models.ScreenDashboard
	s.session.SelectedAccountID = nil
	s.logger.LogNavigation(from, models.ScreenDashboard, "")

	s.logger.LogTransferConfirmed(amount.StringFixed(2))
	s.metrics.IncrementCounter("transfer", map[string]string{"outcome": "confirmed"})
	return models.TransferConfirmed, nil
}

// CancelTransfer discards the pending transfer. Cancelling with nothing
// pending is a harmless no-op.
func (s *sessionService) CancelTransfer() models.TransferOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingTransfer != nil {
		s.pendingTransfer = nil
		s.logger.LogTransferCancelled()
		s.metrics.IncrementCounter("transfer", map[string]string{"outcome": "cancelled"})
	}
	return models.TransferCancelled
}

// Announce reads text aloud in the session's current speech language.
func (s *sessionService) Announce(text string) {
	s.mu.Lock()
	language := s.session.SpeechLanguage
	s.mu.Unlock()

	s.speech.Announce(text, language)
}

// enterLoggedIn performs the LoggedOut -> LoggedIn(Dashboard, none)
// transition. Caller must hold the lock.
func (s *sessionService) enterLoggedIn() {
	s.session.LoggedIn = true
	s.session.ActiveScreen = models.ScreenDashboard
	s.session.SelectedAccountID = nil
	s.pendingTransfer = nil
}

func accountIDString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
