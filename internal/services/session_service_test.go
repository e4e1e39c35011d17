package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"pocketbank/internal/dto"
	"pocketbank/internal/models"
	"pocketbank/internal/repositories"
	"pocketbank/internal/repositories/repository_mocks"
	"pocketbank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testPrompt = "Login with Face ID / Fingerprint"

// SessionServiceTestSuite defines the test suite for the session controller
type SessionServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockAccounts *repository_mocks.MockAccountDataProviderInterface
	mockGate     *service_mocks.MockBiometricGateInterface
	mockSpeech   *service_mocks.MockSpeechAnnouncerInterface
	mockMetrics  *service_mocks.MockMetricsRecorderInterface
	controller   SessionControllerInterface
}

// SetupTest runs before each test
func (s *SessionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccounts = repository_mocks.NewMockAccountDataProviderInterface(s.ctrl)
	s.mockGate = service_mocks.NewMockBiometricGateInterface(s.ctrl)
	s.mockSpeech = service_mocks.NewMockSpeechAnnouncerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	// Metrics are recorded on most transitions; individual tests assert on
	// state and results, not on metric traffic.
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.controller = s.newController(true, "en-US")
}

func (s *SessionServiceTestSuite) newController(biometricsEnabled bool, language string) SessionControllerInterface {
	return NewSessionController(
		s.mockAccounts,
		s.mockGate,
		s.mockSpeech,
		s.mockMetrics,
		slog.Default(),
		biometricsEnabled,
		language,
		testPrompt,
	)
}

// TearDownTest runs after each test
func (s *SessionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSessionServiceSuite runs the test suite
func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) login() {
	result, err := s.controller.AttemptPasswordLogin(dto.LoginRequest{})
	s.Require().NoError(err)
	s.Require().Equal(models.LoginGranted, result)
}

func (s *SessionServiceTestSuite) demoAccounts() []models.Account {
	return []models.Account{
		{ID: uuid.New(), DisplayName: "Primary Checking", SortOrder: 1},
		{ID: uuid.New(), DisplayName: "High-Yield Savings", SortOrder: 2},
	}
}

// Initial state

func (s *SessionServiceTestSuite) TestState_Initial() {
	state := s.controller.State()

	s.False(state.LoggedIn)
	s.Equal(models.ScreenDashboard, state.ActiveScreen)
	s.Nil(state.SelectedAccountID)
	s.True(state.BiometricsEnabled)
	s.Equal("en-US", state.SpeechLanguage)
	s.Nil(state.PendingTransfer)
}

// Password login

func (s *SessionServiceTestSuite) TestAttemptPasswordLogin_EmptyFormGranted() {
	result, err := s.controller.AttemptPasswordLogin(dto.LoginRequest{Email: "", Password: ""})

	s.NoError(err)
	s.Equal(models.LoginGranted, result)

	state := s.controller.State()
	s.True(state.LoggedIn)
	s.Equal(models.ScreenDashboard, state.ActiveScreen)
	s.Nil(state.SelectedAccountID)
}

func (s *SessionServiceTestSuite) TestAttemptPasswordLogin_NonEmptyRejected() {
	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"email only", dto.LoginRequest{Email: "jane.doe@example.com"}},
		{"password only", dto.LoginRequest{Password: "hunter2"}},
		{"both filled", dto.LoginRequest{Email: "jane.doe@example.com", Password: "hunter2"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.controller.AttemptPasswordLogin(tt.req)

			s.ErrorIs(err, ErrCredentialRejected)
			s.Equal(models.LoginRejected, result)

			state := s.controller.State()
			s.False(state.LoggedIn, "rejected login must leave the session logged out")
		})
	}
}

func (s *SessionServiceTestSuite) TestAttemptPasswordLogin_AlreadyLoggedIn() {
	s.login()

	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().GetAccountByID(accounts[0].ID).Return(&accounts[0], nil)
	s.Require().NoError(s.controller.NavigateTo(models.ScreenTransactions, &accounts[0].ID))

	// A second login attempt is a no-op: no second transition, no screen reset.
	result, err := s.controller.AttemptPasswordLogin(dto.LoginRequest{})

	s.NoError(err)
	s.Equal(models.LoginGranted, result)

	state := s.controller.State()
	s.Equal(models.ScreenTransactions, state.ActiveScreen)
	s.Require().NotNil(state.SelectedAccountID)
	s.Equal(accounts[0].ID, *state.SelectedAccountID)
}

// Biometric login

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_Granted() {
	s.mockGate.EXPECT().CheckAvailability(gomock.Any()).Return(models.BiometricAvailable, nil)
	s.mockGate.EXPECT().Authenticate(gomock.Any(), testPrompt).Return(models.AuthenticateGranted, nil)

	result, err := s.controller.AttemptBiometricLogin(context.Background())

	s.NoError(err)
	s.Equal(models.BiometricGranted, result)
	s.True(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_DisabledPreference() {
	s.controller = s.newController(false, "en-US")

	result, err := s.controller.AttemptBiometricLogin(context.Background())

	s.ErrorIs(err, ErrBiometricUnavailable)
	s.Equal(models.BiometricUnavailable, result)
	s.False(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_Unavailable() {
	tests := []struct {
		name         string
		availability models.AvailabilityResult
	}{
		{"no hardware", models.BiometricNoHardware},
		{"not enrolled", models.BiometricNotEnrolled},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.controller = s.newController(true, "en-US")
			s.mockGate.EXPECT().CheckAvailability(gomock.Any()).Return(tt.availability, nil)

			result, err := s.controller.AttemptBiometricLogin(context.Background())

			s.ErrorIs(err, ErrBiometricUnavailable)
			s.Equal(models.BiometricUnavailable, result)
			s.False(s.controller.State().LoggedIn)
		})
	}
}

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_AvailabilityErrorDenied() {
	s.mockGate.EXPECT().CheckAvailability(gomock.Any()).Return(models.AvailabilityResult(""), fmt.Errorf("platform exploded"))

	result, err := s.controller.AttemptBiometricLogin(context.Background())

	s.ErrorIs(err, ErrBiometricDenied)
	s.Equal(models.BiometricDenied, result)
	s.False(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_ChallengeDenied() {
	s.mockGate.EXPECT().CheckAvailability(gomock.Any()).Return(models.BiometricAvailable, nil)
	s.mockGate.EXPECT().Authenticate(gomock.Any(), testPrompt).Return(models.AuthenticateDenied, nil)

	result, err := s.controller.AttemptBiometricLogin(context.Background())

	s.ErrorIs(err, ErrBiometricDenied)
	s.Equal(models.BiometricDenied, result)
	s.False(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_ChallengeErrorDenied() {
	s.mockGate.EXPECT().CheckAvailability(gomock.Any()).Return(models.BiometricAvailable, nil)
	s.mockGate.EXPECT().Authenticate(gomock.Any(), testPrompt).Return(models.AuthenticateError, fmt.Errorf("sensor timeout"))

	result, err := s.controller.AttemptBiometricLogin(context.Background())

	s.ErrorIs(err, ErrBiometricDenied)
	s.Equal(models.BiometricDenied, result)
	s.False(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestAttemptBiometricLogin_AlreadyLoggedIn() {
	s.login()

	// No expectations on the gate: an already-granted session must not reach
	// the platform again.
	result, err := s.controller.AttemptBiometricLogin(context.Background())

	s.NoError(err)
	s.Equal(models.BiometricGranted, result)
}

// Logout

func (s *SessionServiceTestSuite) TestLogout_ResetsNavigationKeepsPreferences() {
	s.login()
	s.Require().NoError(s.controller.SetSpeechLanguage("hi-IN"))
	s.controller.SetBiometricsEnabled(true)

	s.controller.Logout()

	state := s.controller.State()
	s.False(state.LoggedIn)
	s.Equal(models.ScreenDashboard, state.ActiveScreen)
	s.Nil(state.SelectedAccountID)
	s.True(state.BiometricsEnabled)
	s.Equal("hi-IN", state.SpeechLanguage)
}

func (s *SessionServiceTestSuite) TestLogout_WhileLoggedOutIsNoop() {
	s.controller.Logout()

	s.False(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestLogout_DiscardsPendingTransfer() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)

	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "100.00"})
	s.Require().NoError(err)

	s.controller.Logout()
	s.login()

	outcome, err := s.controller.ConfirmTransfer()
	s.ErrorIs(err, ErrNoPendingTransfer)
	s.Equal(models.TransferInvalid, outcome)
}

// Navigation

func (s *SessionServiceTestSuite) TestNavigateTo_RequiresLogin() {
	err := s.controller.NavigateTo(models.ScreenAccounts, nil)

	s.ErrorIs(err, ErrInvalidNavigation)
	s.False(s.controller.State().LoggedIn)
}

func (s *SessionServiceTestSuite) TestNavigateTo_UnknownScreen() {
	s.login()

	err := s.controller.NavigateTo(models.Screen("settings"), nil)

	s.ErrorIs(err, ErrUnknownScreen)
	s.Equal(models.ScreenDashboard, s.controller.State().ActiveScreen)
}

func (s *SessionServiceTestSuite) TestNavigateTo_Transactions() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().GetAccountByID(accounts[0].ID).Return(&accounts[0], nil)

	err := s.controller.NavigateTo(models.ScreenTransactions, &accounts[0].ID)

	s.NoError(err)
	state := s.controller.State()
	s.Equal(models.ScreenTransactions, state.ActiveScreen)
	s.Require().NotNil(state.SelectedAccountID)
	s.Equal(accounts[0].ID, *state.SelectedAccountID)
}

func (s *SessionServiceTestSuite) TestNavigateTo_TransactionsWithoutAccount() {
	s.login()

	err := s.controller.NavigateTo(models.ScreenTransactions, nil)

	s.ErrorIs(err, ErrInvalidNavigation)
	s.Equal(models.ScreenDashboard, s.controller.State().ActiveScreen)
}

func (s *SessionServiceTestSuite) TestNavigateTo_TransactionsUnknownAccount() {
	s.login()
	unknown := uuid.New()
	s.mockAccounts.EXPECT().GetAccountByID(unknown).Return(nil, repositories.ErrAccountNotFound)

	err := s.controller.NavigateTo(models.ScreenTransactions, &unknown)

	s.ErrorIs(err, ErrAccountNotFound)

	state := s.controller.State()
	s.Equal(models.ScreenDashboard, state.ActiveScreen)
	s.Nil(state.SelectedAccountID)
}

func (s *SessionServiceTestSuite) TestNavigateTo_SelectionDoesNotLeak() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().GetAccountByID(accounts[0].ID).Return(&accounts[0], nil)
	s.Require().NoError(s.controller.NavigateTo(models.ScreenTransactions, &accounts[0].ID))

	s.Require().NoError(s.controller.NavigateTo(models.ScreenAccounts, nil))

	state := s.controller.State()
	s.Equal(models.ScreenAccounts, state.ActiveScreen)
	s.Nil(state.SelectedAccountID, "selected account must not survive leaving the history screen")
}

func (s *SessionServiceTestSuite) TestNavigateTo_LeavingTransferDiscardsPending() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)

	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "50.00"})
	s.Require().NoError(err)

	s.Require().NoError(s.controller.NavigateTo(models.ScreenAccounts, nil))

	s.Nil(s.controller.State().PendingTransfer)
}

// Transfers

func (s *SessionServiceTestSuite) TestInitiateTransfer_Valid() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)

	intent, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "250.00"})

	s.Require().NoError(err)
	s.True(intent.Amount.Equal(decimal.RequireFromString("250.00")))
	s.Equal("Primary Checking", intent.FromAccount)
	s.Equal("High-Yield Savings", intent.ToAccount)

	state := s.controller.State()
	s.Require().NotNil(state.PendingTransfer)
	s.True(state.PendingTransfer.Amount.Equal(intent.Amount))
}

func (s *SessionServiceTestSuite) TestInitiateTransfer_InvalidAmounts() {
	s.login()

	for _, amount := range []string{"", "0", "-5", "abc", "1.234"} {
		s.Run(fmt.Sprintf("amount %q", amount), func() {
			_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: amount})

			s.ErrorIs(err, ErrInvalidTransferAmount)
			s.Nil(s.controller.State().PendingTransfer)
		})
	}
}

func (s *SessionServiceTestSuite) TestInitiateTransfer_RequiresLogin() {
	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "100.00"})

	s.ErrorIs(err, ErrInvalidNavigation)
}

func (s *SessionServiceTestSuite) TestConfirmTransfer_AnnouncesOnceAndReturnsHome() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)

	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "250.00"})
	s.Require().NoError(err)

	s.mockSpeech.EXPECT().Announce("Transfer Complete", "en-US").Times(1)

	outcome, err := s.controller.ConfirmTransfer()

	s.NoError(err)
	s.Equal(models.TransferConfirmed, outcome)

	state := s.controller.State()
	s.Equal(models.ScreenDashboard, state.ActiveScreen)
	s.Nil(state.PendingTransfer)
}

func (s *SessionServiceTestSuite) TestConfirmTransfer_UsesSessionLanguage() {
	s.login()
	s.Require().NoError(s.controller.SetSpeechLanguage("hi-IN"))

	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)
	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "10.00"})
	s.Require().NoError(err)

	s.mockSpeech.EXPECT().Announce("Transfer Complete", "hi-IN").Times(1)

	_, err = s.controller.ConfirmTransfer()
	s.NoError(err)
}

func (s *SessionServiceTestSuite) TestConfirmTransfer_NothingPending() {
	s.login()

	outcome, err := s.controller.ConfirmTransfer()

	s.ErrorIs(err, ErrNoPendingTransfer)
	s.Equal(models.TransferInvalid, outcome)
}

func (s *SessionServiceTestSuite) TestConfirmTransfer_SecondConfirmFails() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)
	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "250.00"})
	s.Require().NoError(err)

	s.mockSpeech.EXPECT().Announce("Transfer Complete", "en-US").Times(1)
	_, err = s.controller.ConfirmTransfer()
	s.Require().NoError(err)

	// Confirming again must not announce a second time.
	outcome, err := s.controller.ConfirmTransfer()
	s.ErrorIs(err, ErrNoPendingTransfer)
	s.Equal(models.TransferInvalid, outcome)
}

func (s *SessionServiceTestSuite) TestCancelTransfer() {
	s.login()
	accounts := s.demoAccounts()
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)
	_, err := s.controller.InitiateTransfer(dto.TransferRequest{Amount: "250.00"})
	s.Require().NoError(err)

	outcome := s.controller.CancelTransfer()

	s.Equal(models.TransferCancelled, outcome)
	s.Nil(s.controller.State().PendingTransfer)

	// Cancelling with nothing pending is harmless.
	s.Equal(models.TransferCancelled, s.controller.CancelTransfer())
}

// Preferences

func (s *SessionServiceTestSuite) TestSetBiometricsEnabled_WhileLoggedOut() {
	s.controller = s.newController(false, "en-US")

	s.controller.SetBiometricsEnabled(true)

	s.True(s.controller.State().BiometricsEnabled)
}

func (s *SessionServiceTestSuite) TestSetSpeechLanguage() {
	s.Require().NoError(s.controller.SetSpeechLanguage("es-ES"))
	s.Equal("es-ES", s.controller.State().SpeechLanguage)

	err := s.controller.SetSpeechLanguage("not a tag!")
	s.ErrorIs(err, ErrInvalidSpeechLanguage)
	s.Equal("es-ES", s.controller.State().SpeechLanguage, "invalid code must not change the preference")
}

// Announce

func (s *SessionServiceTestSuite) TestAnnounce_UsesSessionLanguage() {
	s.Require().NoError(s.controller.SetSpeechLanguage("fr-FR"))
	s.mockSpeech.EXPECT().Announce("Total Balance: 89,800.48 dollars", "fr-FR").Times(1)

	s.controller.Announce("Total Balance: 89,800.48 dollars")
}

// Concurrency

func (s *SessionServiceTestSuite) TestConcurrentInputQueuesBehindBiometricAttempt() {
	release := make(chan struct{})
	challengeStarted := make(chan struct{})

	s.mockGate.EXPECT().CheckAvailability(gomock.Any()).Return(models.BiometricAvailable, nil)
	s.mockGate.EXPECT().Authenticate(gomock.Any(), testPrompt).DoAndReturn(
		func(ctx context.Context, promptText string) (models.AuthenticateResult, error) {
			close(challengeStarted)
			<-release
			return models.AuthenticateGranted, nil
		})

	biometricDone := make(chan struct{})
	go func() {
		defer close(biometricDone)
		result, err := s.controller.AttemptBiometricLogin(context.Background())
		s.NoError(err)
		s.Equal(models.BiometricGranted, result)
	}()

	<-challengeStarted

	// A password login arriving mid-challenge queues; it must not complete
	// while the biometric attempt still holds the transition.
	passwordDone := make(chan struct{})
	go func() {
		defer close(passwordDone)
		result, err := s.controller.AttemptPasswordLogin(dto.LoginRequest{})
		s.NoError(err)
		s.Equal(models.LoginGranted, result)
	}()

	select {
	case <-passwordDone:
		s.Fail("password login completed while the biometric challenge was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-biometricDone
	<-passwordDone

	// Exactly one transition happened: logged in, dashboard, nothing selected.
	state := s.controller.State()
	s.True(state.LoggedIn)
	s.Equal(models.ScreenDashboard, state.ActiveScreen)
	s.Nil(state.SelectedAccountID)
}
