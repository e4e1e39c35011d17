// Package format renders monetary amounts for display and builds the
// speakable phrasing the read-aloud affordance uses. All amounts are USD;
// only digit grouping follows the locale.
package format

import (
	"fmt"

	"pocketbank/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "$"

// Currency formats a signed amount as a currency string, e.g. "$5,250.75"
// or "-$750.48". Unparseable language codes fall back to US English.
func Currency(amount decimal.Decimal, languageCode string) string {
	grouped := groupedAmount(amount, languageCode)
	if amount.IsNegative() {
		return "-" + currencySymbol + grouped
	}
	return currencySymbol + grouped
}

// SpeakableAmount renders an amount the way it should be read aloud,
// e.g. "5,250.75 dollars".
func SpeakableAmount(amount decimal.Decimal, languageCode string) string {
	return groupedAmount(amount, languageCode) + " dollars"
}

// TotalBalanceLine builds the read-aloud text for the dashboard balance card.
func TotalBalanceLine(total decimal.Decimal, languageCode string) string {
	return fmt.Sprintf("Total Balance: %s", SpeakableAmount(total, languageCode))
}

// AccountBalanceLine builds the read-aloud text for an account card.
func AccountBalanceLine(account *models.Account, languageCode string) string {
	return fmt.Sprintf("%s. Balance: %s.", account.DisplayName, SpeakableAmount(account.Balance, languageCode))
}

// TransactionLine builds the read-aloud text for a ledger entry,
// e.g. "Grocery Store. Debit: 75.20 dollars."
func TransactionLine(tx *models.Transaction, languageCode string) string {
	label := "Debit"
	if tx.IsCredit() {
		label = "Credit"
	}
	return fmt.Sprintf("%s. %s: %s.", tx.Description, label, SpeakableAmount(tx.AbsAmount(), languageCode))
}

// SignedAmount renders a transaction amount with its sign the way the
// history list shows it, e.g. "+$2,200.00" or "-$75.20".
func SignedAmount(tx *models.Transaction) string {
	sign := "-"
	if tx.IsCredit() {
		sign = "+"
	}
	return sign + currencySymbol + groupedAmount(tx.AbsAmount(), "en-US")
}

// groupedAmount renders the absolute amount with two decimal places and
// locale digit grouping.
func groupedAmount(amount decimal.Decimal, languageCode string) string {
	tag, err := language.Parse(languageCode)
	if err != nil {
		tag = language.AmericanEnglish
	}

	value, _ := amount.Abs().Float64()
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(value, number.Scale(2)))
}
