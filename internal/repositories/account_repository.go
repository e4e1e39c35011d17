package repositories

import (
	"errors"
	"fmt"

	"pocketbank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrProfileNotFound = errors.New("user profile not found")
)

// accountDataProvider implements AccountDataProviderInterface over the seeded store
type accountDataProvider struct {
	db *gorm.DB
}

// NewAccountDataProvider creates a new account data provider
func NewAccountDataProvider(db *gorm.DB) AccountDataProviderInterface {
	return &accountDataProvider{
		db: db,
	}
}

// GetProfile returns the seeded user profile
func (r *accountDataProvider) GetProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// ListAccounts returns all accounts in display order
func (r *accountDataProvider) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("sort_order ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID
func (r *accountDataProvider) GetAccountByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListTransactions returns the account's history, most recent first
func (r *accountDataProvider) ListTransactions(accountID uuid.UUID) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := r.db.
		Where("account_id = ?", accountID).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
