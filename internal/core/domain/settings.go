package domain

import "strings"

// StorageMethod selects where in the vault a transaction entry is written.
type StorageMethod string

const (
	// DailyNotes appends entries to a section inside the per-day journal note.
	DailyNotes StorageMethod = "DAILY_NOTES"
	// DedicatedEconNote appends entries to day-sections of a dedicated finance note.
	DedicatedEconNote StorageMethod = "DEDICATED_ECON_NOTE"
	// SeparateTransactions writes every transaction to its own note.
	SeparateTransactions StorageMethod = "SEPARATE_TRANSACTIONS"
)

// StorageMethodFromString maps stored option text to a StorageMethod,
// falling back to DailyNotes on unknown input.
func StorageMethodFromString(s string) StorageMethod {
	switch StorageMethod(strings.ToUpper(s)) {
	case DailyNotes, DedicatedEconNote, SeparateTransactions:
		return StorageMethod(strings.ToUpper(s))
	default:
		return DailyNotes
	}
}

// MarkdownFormat selects the line dialect for rendered entries.
type MarkdownFormat string

const (
	FormatTable          MarkdownFormat = "TABLE"
	FormatBulletList     MarkdownFormat = "BULLET_LIST"
	FormatDataviewInline MarkdownFormat = "DATAVIEW_INLINE"
)

// MarkdownFormatFromString maps stored option text to a MarkdownFormat,
// falling back to FormatTable on unknown input.
func MarkdownFormatFromString(s string) MarkdownFormat {
	switch MarkdownFormat(strings.ToUpper(s)) {
	case FormatTable, FormatBulletList, FormatDataviewInline:
		return MarkdownFormat(strings.ToUpper(s))
	default:
		return FormatTable
	}
}

// EconNoteFrequency selects how the dedicated finance note is partitioned.
type EconNoteFrequency string

const (
	FrequencyMonthly EconNoteFrequency = "MONTHLY"
	FrequencyYearly  EconNoteFrequency = "YEARLY"
	FrequencySingle  EconNoteFrequency = "SINGLE"
)

// EconNoteFrequencyFromString maps stored option text to an EconNoteFrequency,
// falling back to FrequencyMonthly on unknown input.
func EconNoteFrequencyFromString(s string) EconNoteFrequency {
	switch EconNoteFrequency(strings.ToUpper(s)) {
	case FrequencyMonthly, FrequencyYearly, FrequencySingle:
		return EconNoteFrequency(strings.ToUpper(s))
	default:
		return FrequencyMonthly
	}
}

// VaultSettings is the full vault configuration. It is supplied whole and is
// immutable for the lifetime of one store; changing it means constructing a new
// store, never mutating shared state.
type VaultSettings struct {
	VaultPath          string
	StorageMethod      StorageMethod
	DailyNotesFolder   string // Template, e.g. "Journal/Daily/{YYYY}"
	DailyNotesFilename string // Template, e.g. "{YYYY-MM-DD}.md"
	DailyNotesHeading  string // Exact heading line locating the finance section
	EconNoteFolder     string
	EconNoteFrequency  EconNoteFrequency
	ReceiptFolder      string // Template for relocated receipt folders
	ReceiptFilename    string // Template for relocated receipt filenames
	TagFormat          TagFormat
	MarkdownFormat     MarkdownFormat
	Categories         []Category // Ordered, non-empty; last entry is the catch-all
}

// DefaultVaultSettings returns the settings used when nothing is configured.
// The vault path stays empty and must be supplied before any store operation.
func DefaultVaultSettings() VaultSettings {
	return VaultSettings{
		StorageMethod:      DailyNotes,
		DailyNotesFolder:   "Journal/Daily/{YYYY}",
		DailyNotesFilename: "{YYYY-MM-DD}.md",
		DailyNotesHeading:  "## 💰 Ekonomi",
		EconNoteFolder:     "Privat/Ekonomi",
		EconNoteFrequency:  FrequencyMonthly,
		ReceiptFolder:      "Media/Kvitton/{YYYY}/{MM}",
		ReceiptFilename:    "{YYYY-MM-DD}-{HHmm}.jpg",
		TagFormat:          TagEmoji,
		MarkdownFormat:     FormatTable,
		Categories:         DefaultCategories(),
	}
}
