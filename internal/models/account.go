package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountKindChecking = "checking"
	AccountKindSavings  = "savings"
	AccountKindCredit   = "credit"
)

var (
	ErrInvalidAccountKind = errors.New("invalid account kind")
)

// Account represents a bank account as shown in the app. Balances are signed:
// a credit card account carries its liability as a negative balance.
type Account struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	DisplayName  string          `gorm:"type:varchar(100);not null" json:"display_name"`
	MaskedNumber string          `gorm:"type:varchar(20);not null" json:"masked_number"`
	Balance      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Kind         string          `gorm:"type:varchar(20);not null" json:"kind"`
	SortOrder    int             `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields.
func (a *Account) Validate() error {
	if a.DisplayName == "" {
		return errors.New("display name is required")
	}

	if a.MaskedNumber == "" {
		return errors.New("masked number is required")
	}

	if !IsValidAccountKind(a.Kind) {
		return ErrInvalidAccountKind
	}

	// Negative balances are legal: credit accounts report their liability
	// that way. There is no non-negative constraint here on purpose.
	return nil
}

// IsLiability returns true for accounts whose balance represents money owed.
func (a *Account) IsLiability() bool {
	return a.Kind == AccountKindCredit
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountKind checks if the account kind is valid.
func IsValidAccountKind(kind string) bool {
	switch kind {
	case AccountKindChecking, AccountKindSavings, AccountKindCredit:
		return true
	default:
		return false
	}
}

// MaskNumber renders the last digits of an account number the way the app
// displays them, e.g. "... 4567".
func MaskNumber(lastDigits string) string {
	return fmt.Sprintf("... %s", lastDigits)
}
