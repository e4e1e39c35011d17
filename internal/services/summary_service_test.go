package services

import (
	"fmt"
	"testing"
	"time"

	"pocketbank/internal/models"
	"pocketbank/internal/repositories"
	"pocketbank/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SummaryServiceTestSuite defines the test suite for the summary service
type SummaryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockAccounts *repository_mocks.MockAccountDataProviderInterface
	service      SummaryServiceInterface
}

// SetupTest runs before each test
func (s *SummaryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccounts = repository_mocks.NewMockAccountDataProviderInterface(s.ctrl)
	s.service = NewSummaryService(s.mockAccounts)
}

// TearDownTest runs after each test
func (s *SummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSummaryServiceSuite runs the test suite
func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary() {
	profile := &models.UserProfile{ID: uuid.New(), Name: "Jane Doe", Email: "jane.doe@example.com"}
	accounts := []models.Account{
		{ID: uuid.New(), DisplayName: "Primary Checking", Balance: decimal.RequireFromString("5250.75")},
		{ID: uuid.New(), DisplayName: "High-Yield Savings", Balance: decimal.RequireFromString("85300.21")},
		{ID: uuid.New(), DisplayName: "Travel Rewards Card", Balance: decimal.RequireFromString("-750.48")},
	}

	now := time.Now()
	transactions := []models.Transaction{
		{ID: uuid.New(), AccountID: accounts[0].ID, Date: now, Description: "Grocery Store"},
		{ID: uuid.New(), AccountID: accounts[0].ID, Date: now.AddDate(0, 0, -1), Description: "Direct Deposit"},
		{ID: uuid.New(), AccountID: accounts[0].ID, Date: now.AddDate(0, 0, -2), Description: "Coffee Shop"},
		{ID: uuid.New(), AccountID: accounts[0].ID, Date: now.AddDate(0, 0, -3), Description: "Gas Station"},
	}

	s.mockAccounts.EXPECT().GetProfile().Return(profile, nil)
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)
	s.mockAccounts.EXPECT().ListTransactions(accounts[0].ID).Return(transactions, nil)

	summary, err := s.service.GetDashboardSummary()

	s.Require().NoError(err)
	s.Equal("Jane Doe", summary.Profile.Name)
	s.Len(summary.Accounts, 3)

	// The credit card's negative balance is subtracted, not ignored.
	s.True(summary.TotalBalance.Equal(decimal.RequireFromString("89800.48")))

	s.Require().Len(summary.RecentTransactions, 3)
	s.Equal("Grocery Store", summary.RecentTransactions[0].Description)
	s.Equal("Coffee Shop", summary.RecentTransactions[2].Description)
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_FewTransactions() {
	profile := &models.UserProfile{ID: uuid.New(), Name: "Jane Doe"}
	accounts := []models.Account{
		{ID: uuid.New(), DisplayName: "Primary Checking", Balance: decimal.RequireFromString("100.00")},
	}

	s.mockAccounts.EXPECT().GetProfile().Return(profile, nil)
	s.mockAccounts.EXPECT().ListAccounts().Return(accounts, nil)
	s.mockAccounts.EXPECT().ListTransactions(accounts[0].ID).Return([]models.Transaction{}, nil)

	summary, err := s.service.GetDashboardSummary()

	s.Require().NoError(err)
	s.Empty(summary.RecentTransactions)
	s.True(summary.TotalBalance.Equal(decimal.RequireFromString("100.00")))
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_NoAccounts() {
	profile := &models.UserProfile{ID: uuid.New(), Name: "Jane Doe"}

	s.mockAccounts.EXPECT().GetProfile().Return(profile, nil)
	s.mockAccounts.EXPECT().ListAccounts().Return([]models.Account{}, nil)

	summary, err := s.service.GetDashboardSummary()

	s.Require().NoError(err)
	s.True(summary.TotalBalance.Equal(decimal.Zero))
	s.Empty(summary.RecentTransactions)
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_ProfileError() {
	s.mockAccounts.EXPECT().GetProfile().Return(nil, repositories.ErrProfileNotFound)

	_, err := s.service.GetDashboardSummary()

	s.ErrorIs(err, repositories.ErrProfileNotFound)
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_AccountsError() {
	profile := &models.UserProfile{ID: uuid.New(), Name: "Jane Doe"}

	s.mockAccounts.EXPECT().GetProfile().Return(profile, nil)
	s.mockAccounts.EXPECT().ListAccounts().Return(nil, fmt.Errorf("store closed"))

	_, err := s.service.GetDashboardSummary()

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to list accounts")
}
