package markdown

import (
	"fmt"
	"testing"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_TableScenario(t *testing.T) {
	p := newEntryParser(testSettings())
	date := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	txn, ok := p.parseLine("| 14:23 | 150.0 kr | #🍔 | Lunch | - |", date)
	require.True(t, ok)

	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("150.0")))
	assert.Equal(t, "Mat", txn.Category.Name)
	assert.Equal(t, "Lunch", txn.Description)
	assert.Equal(t, domain.TimeOfDay{Hour: 14, Minute: 23}, txn.Time)
	assert.Equal(t, date, txn.Date)
}

// Every dialect/tag-format combination must parse back what the formatter
// produced, for transactions whose category is configured.
func TestRoundTrip_AllDialects(t *testing.T) {
	markdownFormats := []domain.MarkdownFormat{domain.FormatTable, domain.FormatBulletList, domain.FormatDataviewInline}
	tagFormats := []domain.TagFormat{domain.TagEmoji, domain.TagText, domain.TagNested, domain.TagCombined}

	for _, mf := range markdownFormats {
		for _, tf := range tagFormats {
			t.Run(fmt.Sprintf("%s/%s", mf, tf), func(t *testing.T) {
				settings := testSettings()
				settings.MarkdownFormat = mf
				settings.TagFormat = tf

				original := lunchTransaction()
				line := NewEntryFormatter(settings).FormatEntry(original)

				parsed, ok := newEntryParser(settings).parseLine(line, original.Date)
				require.True(t, ok, "line did not match: %q", line)

				assert.True(t, parsed.Amount.Equal(original.Amount), "amount %s != %s", parsed.Amount, original.Amount)
				assert.Equal(t, original.Category.Name, parsed.Category.Name)
				assert.Equal(t, original.Description, parsed.Description)
				assert.Equal(t, original.Time, parsed.Time)
			})
		}
	}
}

func TestRoundTrip_WithReceipt(t *testing.T) {
	for _, mf := range []domain.MarkdownFormat{domain.FormatTable, domain.FormatBulletList, domain.FormatDataviewInline} {
		settings := testSettings()
		settings.MarkdownFormat = mf

		original := lunchTransaction()
		original.ReceiptPath = "Media/Kvitton/2024/03/kvitto.jpg"
		line := NewEntryFormatter(settings).FormatEntry(original)

		parsed, ok := newEntryParser(settings).parseLine(line, original.Date)
		require.True(t, ok, "line did not match: %q", line)
		assert.Equal(t, original.Description, parsed.Description, "dialect %s", mf)
	}
}

func TestRoundTrip_FractionalAmount(t *testing.T) {
	settings := testSettings()
	original := lunchTransaction()
	original.Amount = decimal.RequireFromString("49.5")

	line := NewEntryFormatter(settings).FormatEntry(original)
	parsed, ok := newEntryParser(settings).parseLine(line, original.Date)

	require.True(t, ok)
	assert.True(t, parsed.Amount.Equal(original.Amount))
}

func TestParseLine_UnknownTagFallsBackToCatchAll(t *testing.T) {
	p := newEntryParser(testSettings())
	date := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	txn, ok := p.parseLine("| 09:00 | 25.0 kr | #mystisk | Något | - |", date)
	require.True(t, ok)
	assert.Equal(t, "Övrigt", txn.Category.Name)
}

func TestParseContent_SkipsNonMatchingLines(t *testing.T) {
	p := newEntryParser(testSettings())
	date := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	content := `---
type: daily
date: 2024-03-07
---

# 2024-03-07

## 💰 Ekonomi

| Tid | Belopp | Kategori | Beskrivning | Kvitto |
|-----|--------|----------|-------------|--------|
| 14:23 | 150.0 kr | #🍔 | Lunch | - |
| 08:10 | 35.5 kr | #🍔 | Kaffe | - |

Anteckningar utan transaktioner.
`

	txns := p.parseContent(content, date)
	require.Len(t, txns, 2)
	assert.Equal(t, "Lunch", txns[0].Description)
	assert.Equal(t, "Kaffe", txns[1].Description)
}

func TestParseContent_WrongDialectYieldsNothing(t *testing.T) {
	settings := testSettings()
	settings.MarkdownFormat = domain.FormatBulletList
	p := newEntryParser(settings)

	// Table rows must not match when the bullet dialect is configured.
	txns := p.parseContent("| 14:23 | 150.0 kr | #🍔 | Lunch | - |", time.Now())
	assert.Empty(t, txns)
}

func TestParseAmount_MalformedDefaultsToZero(t *testing.T) {
	assert.True(t, parseAmount("inte-ett-tal").IsZero())
	assert.True(t, parseAmount("").IsZero())
	assert.True(t, parseAmount("149.99").Equal(decimal.RequireFromString("149.99")))
}
