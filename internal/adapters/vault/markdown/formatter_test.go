package markdown

import (
	"testing"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lunchTransaction() domain.Transaction {
	return domain.Transaction{
		Amount:      decimal.NewFromInt(150),
		Category:    domain.Category{Name: "Mat", Emoji: "🍔"},
		Description: "Lunch",
		Date:        time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		Time:        domain.TimeOfDay{Hour: 14, Minute: 23},
	}
}

func TestFormatEntry_Table(t *testing.T) {
	settings := testSettings()
	f := NewEntryFormatter(settings)

	assert.Equal(t, "| 14:23 | 150.0 kr | #🍔 | Lunch | - |", f.FormatEntry(lunchTransaction()))
}

func TestFormatEntry_Table_WithReceipt(t *testing.T) {
	settings := testSettings()
	f := NewEntryFormatter(settings)

	txn := lunchTransaction()
	txn.ReceiptPath = "Media/Kvitton/2024-03-07-1423.jpg"

	assert.Equal(t,
		"| 14:23 | 150.0 kr | #🍔 | Lunch | ![[Media/Kvitton/2024-03-07-1423.jpg]] |",
		f.FormatEntry(txn))
}

func TestFormatEntry_BulletList(t *testing.T) {
	settings := testSettings()
	settings.MarkdownFormat = domain.FormatBulletList
	f := NewEntryFormatter(settings)

	assert.Equal(t, "- **150.0 kr** #🍔 - Lunch (14:23)", f.FormatEntry(lunchTransaction()))

	txn := lunchTransaction()
	txn.ReceiptPath = "kvitto.jpg"
	assert.Equal(t, "- **150.0 kr** #🍔 - Lunch (14:23) ![[kvitto.jpg]]", f.FormatEntry(txn))
}

func TestFormatEntry_DataviewInline(t *testing.T) {
	settings := testSettings()
	settings.MarkdownFormat = domain.FormatDataviewInline
	f := NewEntryFormatter(settings)

	assert.Equal(t,
		"- [belopp:: 150.0] [kategori:: #🍔] [beskrivning:: Lunch] [tid:: 14:23]",
		f.FormatEntry(lunchTransaction()))
}

func TestFormatEntry_TagFormats(t *testing.T) {
	tests := []struct {
		name   string
		format domain.TagFormat
		want   string
	}{
		{name: "text", format: domain.TagText, want: "| 14:23 | 150.0 kr | #mat | Lunch | - |"},
		{name: "nested", format: domain.TagNested, want: "| 14:23 | 150.0 kr | #utgift/mat | Lunch | - |"},
		{name: "combined", format: domain.TagCombined, want: "| 14:23 | 150.0 kr | #🍔 #mat | Lunch | - |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			settings.TagFormat = tt.format
			f := NewEntryFormatter(settings)
			assert.Equal(t, tt.want, f.FormatEntry(lunchTransaction()))
		})
	}
}

func TestAmountText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "150", want: "150.0"},
		{in: "150.0", want: "150.0"},
		{in: "49.5", want: "49.5"},
		{in: "149.99", want: "149.99"},
		{in: "0", want: "0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, amountText(decimal.RequireFromString(tt.in)), "amount %s", tt.in)
	}
}
