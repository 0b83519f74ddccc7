package markdown

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Per-dialect entry patterns. The table and bullet patterns are anchored to
// the start of the trimmed line; the dataview pattern matches free-form
// [key:: value] fields that may have other text (e.g. a receipt embed) between
// them. The first tag token is captured; combined-format entries carry a
// second "#name" token after it, which is matched but ignored so those entries
// still round-trip.
var (
	tableEntryPattern    = regexp.MustCompile(`^\|\s*(\d{2}:\d{2})\s*\|\s*(\d+(?:\.\d+)?)\s*kr\s*\|\s*#(\S+)(?:\s+#\S+)*\s*\|\s*([^|]+)\s*\|`)
	bulletEntryPattern   = regexp.MustCompile(`^-\s*\*\*(\d+(?:\.\d+)?)\s*kr\*\*\s*#(\S+)(?:\s+#\S+)*\s*-\s*([^(]+)\((\d{2}:\d{2})\)`)
	dataviewEntryPattern = regexp.MustCompile(`\[belopp::\s*(\d+(?:\.\d+)?)\].*?\[kategori::\s*#(\S+)(?:\s+#\S+)*\].*?\[beskrivning::\s*([^\]]+)\].*?\[tid::\s*(\d{2}:\d{2})\]`)
)

// entryParser recovers transactions from note text using the pattern of the
// configured dialect. Parsing is best-effort: lines that do not match are
// skipped, unparseable amounts default to zero, and unknown category tags fall
// back to the catch-all category.
type entryParser struct {
	settings domain.VaultSettings
}

func newEntryParser(settings domain.VaultSettings) *entryParser {
	return &entryParser{settings: settings}
}

// parseContent scans the full text of a note and returns the transactions it
// holds, dated to the given day.
func (p *entryParser) parseContent(content string, date time.Time) []domain.Transaction {
	var transactions []domain.Transaction
	for _, line := range strings.Split(content, "\n") {
		if txn, ok := p.parseLine(line, date); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}

// parseLine matches one line against the configured dialect's pattern.
func (p *entryParser) parseLine(line string, date time.Time) (domain.Transaction, bool) {
	line = strings.TrimSpace(line)

	var timeText, amountText, tagToken, description string
	switch p.settings.MarkdownFormat {
	case domain.FormatBulletList:
		m := bulletEntryPattern.FindStringSubmatch(line)
		if m == nil {
			return domain.Transaction{}, false
		}
		amountText, tagToken, description, timeText = m[1], m[2], m[3], m[4]
	case domain.FormatDataviewInline:
		m := dataviewEntryPattern.FindStringSubmatch(line)
		if m == nil {
			return domain.Transaction{}, false
		}
		amountText, tagToken, description, timeText = m[1], m[2], m[3], m[4]
	default:
		m := tableEntryPattern.FindStringSubmatch(line)
		if m == nil {
			return domain.Transaction{}, false
		}
		timeText, amountText, tagToken, description = m[1], m[2], m[3], m[4]
	}

	// Nested tags carry a hierarchy prefix (#utgift/mat); the segment after
	// the last slash is the category identifier.
	if idx := strings.LastIndexByte(tagToken, '/'); idx >= 0 {
		tagToken = tagToken[idx+1:]
	}

	return domain.Transaction{
		Amount:      parseAmount(amountText),
		Category:    domain.ResolveCategory(p.settings.Categories, tagToken),
		Description: strings.TrimSpace(description),
		Date:        date,
		Time:        parseTimeOfDay(timeText),
	}, true
}

// parseAmount parses decimal text, defaulting to zero on malformed input
// rather than failing the line.
func parseAmount(text string) decimal.Decimal {
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseTimeOfDay parses zero-padded HH:MM text. The patterns only ever hand it
// two-digit pairs, so errors cannot occur past pattern matching.
func parseTimeOfDay(text string) domain.TimeOfDay {
	hour, _ := strconv.Atoi(text[:2])
	minute, _ := strconv.Atoi(text[3:])
	return domain.TimeOfDay{Hour: hour, Minute: minute}
}
