package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindCredit = "credit"
	TransactionKindDebit  = "debit"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrAmountKindMismatch     = errors.New("transaction amount sign does not match kind")
)

// Transaction is a single immutable ledger entry belonging to exactly one
// account. Credits carry positive amounts, debits negative ones, matching how
// the app renders them.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind        string          `gorm:"type:varchar(10);not null" json:"kind"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields.
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.Description == "" {
		return errors.New("description is required")
	}

	if t.Date.IsZero() {
		return errors.New("date is required")
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	if t.Kind == TransactionKindCredit && t.Amount.IsNegative() {
		return ErrAmountKindMismatch
	}
	if t.Kind == TransactionKindDebit && t.Amount.IsPositive() {
		return ErrAmountKindMismatch
	}

	return nil
}

// IsCredit returns true when the entry adds money to the account.
func (t *Transaction) IsCredit() bool {
	return t.Kind == TransactionKindCredit
}

// AbsAmount returns the unsigned amount for display purposes.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid.
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindCredit, TransactionKindDebit:
		return true
	default:
		return false
	}
}
