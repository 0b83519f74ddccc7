package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single logged expense or income entry.
// Once written to the vault a transaction is immutable; corrections are new entries.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Opaque unique id (UUID), generated at creation
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; precise decimal type
	Category      Category        `json:"category"`
	Description   string          `json:"description"` // Free text, may be empty
	Date          time.Time       `json:"date"`        // Calendar day; intra-day precision lives in Time
	Time          TimeOfDay       `json:"time"`
	ReceiptPath   string          `json:"receiptPath,omitempty"` // Vault-relative path, empty when no receipt
	IsIncome      bool            `json:"isIncome"`
}

// At combines the calendar day and time-of-day into a single instant,
// used for ordering transactions most-recent-first.
func (t Transaction) At() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), t.Time.Hour, t.Time.Minute, 0, 0, time.UTC)
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// TimeOfDayFrom extracts the time-of-day from an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// String renders the time as zero-padded HH:MM, the form embedded in vault entries.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
