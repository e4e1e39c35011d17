package services

import (
	"fmt"

	"pocketbank/internal/dto"
	"pocketbank/internal/repositories"

	"github.com/shopspring/decimal"
)

// recentTransactionLimit caps the dashboard's recent-activity list.
const recentTransactionLimit = 3

// summaryService implements SummaryServiceInterface
type summaryService struct {
	accounts repositories.AccountDataProviderInterface
}

// NewSummaryService creates the dashboard summary service.
func NewSummaryService(accounts repositories.AccountDataProviderInterface) SummaryServiceInterface {
	return &summaryService{
		accounts: accounts,
	}
}

// GetDashboardSummary aggregates the dashboard screen: the user, every
// account, the signed total balance across them, and the most recent entries
// of the primary (first) account.
func (s *summaryService) GetDashboardSummary() (*dto.DashboardSummary, error) {
	profile, err := s.accounts.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	accounts, err := s.accounts.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}

	summary := &dto.DashboardSummary{
		Profile:      *profile,
		TotalBalance: total,
		Accounts:     accounts,
	}

	if len(accounts) > 0 {
		transactions, err := s.accounts.ListTransactions(accounts[0].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list recent transactions: %w", err)
		}
		if len(transactions) > recentTransactionLimit {
			transactions = transactions[:recentTransactionLimit]
		}
		summary.RecentTransactions = transactions
	}

	return summary, nil
}
