package database

import (
	"fmt"
	"log/slog"
	"time"

	"pocketbank/internal/config"
	"pocketbank/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// demoAccount describes one of the fixed accounts the prototype ships with.
type demoAccount struct {
	name       string
	lastDigits string
	balance    string
	kind       string
}

// demoTransaction describes one fixed ledger entry.
type demoTransaction struct {
	account     int // index into demoAccounts
	date        string
	description string
	amount      string
	kind        string
}

var demoProfile = models.UserProfile{
	Name:  "Jane Doe",
	Email: "jane.doe@example.com",
}

var demoAccounts = []demoAccount{
	{"Primary Checking", "4567", "5250.75", models.AccountKindChecking},
	{"High-Yield Savings", "8910", "85300.21", models.AccountKindSavings},
	{"Travel Rewards Card", "2345", "-750.48", models.AccountKindCredit},
}

var demoTransactions = []demoTransaction{
	{0, "2024-07-15", "Grocery Store", "-75.20", models.TransactionKindDebit},
	{0, "2024-07-14", "Direct Deposit", "2200.00", models.TransactionKindCredit},
	{1, "2024-07-11", "Transfer from Checking", "500.00", models.TransactionKindCredit},
	{2, "2024-07-10", "Airline Ticket", "-450.00", models.TransactionKindDebit},
}

// debitDescriptions is the pool the generated history draws from.
var debitDescriptions = []string{
	"Grocery Store",
	"Coffee Shop",
	"Gas Station",
	"Online Shopping",
	"Restaurant",
	"Pharmacy",
	"Streaming Subscription",
	"Public Transit",
	"Utility Bill",
	"Phone Bill",
}

var creditDescriptions = []string{
	"Direct Deposit",
	"Refund",
	"Interest Payment",
	"Cashback Reward",
}

// Seeder loads the demo dataset into the store. The account data is mock
// data by design; the rest of the system only ever reads it.
type Seeder struct {
	db     *DB
	cfg    *config.DemoConfig
	faker  *gofakeit.Faker
	logger *slog.Logger
}

// NewSeeder creates a seeder. A non-zero HistorySeed makes the generated
// history deterministic.
func NewSeeder(db *DB, cfg *config.DemoConfig, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		cfg:    cfg,
		faker:  gofakeit.New(cfg.HistorySeed),
		logger: logger,
	}
}

// Seed populates the store with the demo profile, accounts and transaction
// history. Seeding is idempotent: a store that already has a profile is left
// untouched.
func (s *Seeder) Seed() error {
	var count int64
	if err := s.db.Model(&models.UserProfile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		s.logger.Info("demo data already seeded, skipping")
		return nil
	}

	profile := demoProfile
	if err := s.db.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	accounts := make([]models.Account, 0, len(demoAccounts))
	for i, da := range demoAccounts {
		balance, err := decimal.NewFromString(da.balance)
		if err != nil {
			return fmt.Errorf("bad demo balance %q: %w", da.balance, err)
		}

		account := models.Account{
			DisplayName:  da.name,
			MaskedNumber: models.MaskNumber(da.lastDigits),
			Balance:      balance,
			Kind:         da.kind,
			SortOrder:    i + 1,
		}
		if err := s.db.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to seed account %q: %w", da.name, err)
		}
		accounts = append(accounts, account)
	}

	for _, dt := range demoTransactions {
		amount, err := decimal.NewFromString(dt.amount)
		if err != nil {
			return fmt.Errorf("bad demo amount %q: %w", dt.amount, err)
		}

		date, err := time.Parse("2006-01-02", dt.date)
		if err != nil {
			return fmt.Errorf("bad demo date %q: %w", dt.date, err)
		}

		tx := models.Transaction{
			AccountID:   accounts[dt.account].ID,
			Date:        date,
			Description: dt.description,
			Amount:      amount,
			Kind:        dt.kind,
		}
		if err := s.db.Create(&tx).Error; err != nil {
			return fmt.Errorf("failed to seed transaction %q: %w", dt.description, err)
		}
	}

	if s.cfg.SeedHistory {
		for _, account := range accounts {
			if err := s.generateHistory(&account, s.cfg.HistoryCount); err != nil {
				return err
			}
		}
	}

	s.logger.Info("demo data seeded",
		slog.Int("accounts", len(accounts)),
		slog.Bool("history", s.cfg.SeedHistory),
	)
	return nil
}

// generateHistory adds count additional realistic entries to an account,
// dated before the fixed demo transactions so those stay the most recent.
func (s *Seeder) generateHistory(account *models.Account, count int) error {
	historyEnd := time.Date(2024, time.July, 9, 0, 0, 0, 0, time.UTC)
	historyStart := historyEnd.AddDate(0, -3, 0)

	for i := 0; i < count; i++ {
		tx := models.Transaction{
			AccountID: account.ID,
			Date:      s.faker.DateRange(historyStart, historyEnd),
		}

		// Roughly one credit for every four debits, like a real statement.
		if s.faker.Number(1, 5) == 1 {
			tx.Kind = models.TransactionKindCredit
			tx.Description = s.faker.RandomString(creditDescriptions)
			tx.Amount = decimal.NewFromFloat(s.faker.Price(20, 2500)).Round(2)
		} else {
			tx.Kind = models.TransactionKindDebit
			tx.Description = s.faker.RandomString(debitDescriptions)
			tx.Amount = decimal.NewFromFloat(s.faker.Price(5, 300)).Round(2).Neg()
		}

		if err := s.db.Create(&tx).Error; err != nil {
			return fmt.Errorf("failed to seed history for %q: %w", account.DisplayName, err)
		}
	}

	return nil
}
