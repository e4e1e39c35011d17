package repositories

import (
	"pocketbank/internal/models"

	"github.com/google/uuid"
)

// AccountDataProviderInterface is the read-only source of the account list
// and per-account transaction history. The prototype backs it with seeded
// mock data; a real backend client would implement the same contract.
type AccountDataProviderInterface interface {
	// GetProfile returns the demo user shown on the dashboard and profile screens.
	GetProfile() (*models.UserProfile, error)

	// ListAccounts returns all accounts in display order.
	ListAccounts() ([]models.Account, error)

	// GetAccountByID resolves a single account, ErrAccountNotFound if unknown.
	GetAccountByID(id uuid.UUID) (*models.Account, error)

	// ListTransactions returns the account's history, most recent first.
	// An account with no history yields an empty slice, not an error.
	ListTransactions(accountID uuid.UUID) ([]models.Transaction, error)
}
