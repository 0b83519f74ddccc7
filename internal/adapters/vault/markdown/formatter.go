package markdown

import (
	"fmt"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryFormatter renders a transaction as one markdown line in the configured
// dialect. Each rendering is the exact inverse of the matching parser pattern,
// so entries produced here always round-trip.
type EntryFormatter struct {
	settings domain.VaultSettings
}

// NewEntryFormatter creates an EntryFormatter for the given settings.
func NewEntryFormatter(settings domain.VaultSettings) *EntryFormatter {
	return &EntryFormatter{settings: settings}
}

// FormatEntry renders the transaction in the configured markdown dialect.
func (f *EntryFormatter) FormatEntry(txn domain.Transaction) string {
	tag := txn.Category.Tag(f.settings.TagFormat)
	switch f.settings.MarkdownFormat {
	case domain.FormatBulletList:
		return formatBulletEntry(txn, tag)
	case domain.FormatDataviewInline:
		return formatDataviewEntry(txn, tag)
	default:
		return formatTableEntry(txn, tag)
	}
}

func formatTableEntry(txn domain.Transaction, tag string) string {
	receipt := "-"
	if txn.ReceiptPath != "" {
		receipt = fmt.Sprintf("![[%s]]", txn.ReceiptPath)
	}
	return fmt.Sprintf("| %s | %s kr | %s | %s | %s |",
		txn.Time, amountText(txn.Amount), tag, txn.Description, receipt)
}

func formatBulletEntry(txn domain.Transaction, tag string) string {
	return fmt.Sprintf("- **%s kr** %s - %s (%s)%s",
		amountText(txn.Amount), tag, txn.Description, txn.Time, receiptSuffix(txn))
}

func formatDataviewEntry(txn domain.Transaction, tag string) string {
	return fmt.Sprintf("- [belopp:: %s] [kategori:: %s] [beskrivning:: %s] [tid:: %s]%s",
		amountText(txn.Amount), tag, txn.Description, txn.Time, receiptSuffix(txn))
}

func receiptSuffix(txn domain.Transaction) string {
	if txn.ReceiptPath == "" {
		return ""
	}
	return fmt.Sprintf(" ![[%s]]", txn.ReceiptPath)
}

// amountText renders an amount with its natural decimal text. Integral values
// keep one decimal place so the wire form stays "150.0 kr", never "150 kr".
func amountText(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return amount.StringFixed(1)
	}
	return amount.String()
}
