package dto

import (
	"time"

	"pocketbank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session Request DTOs

// LoginRequest carries the login form fields. Both fields intentionally have
// no validate tags: the prototype's credential check accepts only the empty
// form (see services.SessionController).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TransferRequest carries the transfer form input as typed by the user.
type TransferRequest struct {
	Amount string `json:"amount" validate:"required,transfer_amount"`
}

// SpeechPreferenceRequest carries a speech language change.
type SpeechPreferenceRequest struct {
	Language string `json:"language" validate:"required,speech_language"`
}

// Session Response DTOs

// SessionState is a read-only snapshot of the session handed to the
// presentation layer for rendering.
type SessionState struct {
	LoggedIn          bool            `json:"logged_in"`
	ActiveScreen      models.Screen   `json:"active_screen"`
	SelectedAccountID *uuid.UUID      `json:"selected_account_id,omitempty"`
	BiometricsEnabled bool            `json:"biometrics_enabled"`
	SpeechLanguage    string          `json:"speech_language"`
	PendingTransfer   *TransferIntent `json:"pending_transfer,omitempty"`
}

// TransferIntent is a parsed transfer waiting for explicit confirmation. The
// two-step confirm/cancel interaction operates on this value.
type TransferIntent struct {
	Amount      decimal.Decimal `json:"amount"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DashboardSummary aggregates everything the dashboard screen renders.
type DashboardSummary struct {
	Profile            models.UserProfile   `json:"profile"`
	TotalBalance       decimal.Decimal      `json:"total_balance"`
	Accounts           []models.Account     `json:"accounts"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}
