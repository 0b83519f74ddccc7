// Package markdown implements the vault repository on top of plain markdown
// files inside an Obsidian vault. Entries are rendered in one of three line
// dialects, inserted into the right note section for the configured storage
// method, and parsed back with per-dialect patterns.
package markdown

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
)

// PathResolver maps a calendar day onto the vault folder and file that hold
// its transactions, according to the configured storage method.
type PathResolver struct {
	settings domain.VaultSettings
	now      func() time.Time
}

// NewPathResolver creates a PathResolver for the given settings.
func NewPathResolver(settings domain.VaultSettings) *PathResolver {
	return &PathResolver{settings: settings, now: time.Now}
}

// ResolveFolder returns the vault-relative folder for the given day.
func (r *PathResolver) ResolveFolder(date time.Time) string {
	switch r.settings.StorageMethod {
	case domain.DedicatedEconNote:
		return r.settings.EconNoteFolder
	case domain.SeparateTransactions:
		return r.settings.EconNoteFolder + "/Transaktioner"
	default:
		return expandTemplate(r.settings.DailyNotesFolder, date)
	}
}

// ResolveFilename returns the filename for the given day. Under
// SeparateTransactions the name embeds the current epoch milliseconds, so two
// calls never name the same file and the result is not reproducible.
func (r *PathResolver) ResolveFilename(date time.Time) string {
	switch r.settings.StorageMethod {
	case domain.DedicatedEconNote:
		switch r.settings.EconNoteFrequency {
		case domain.FrequencyYearly:
			return date.Format("2006") + ".md"
		case domain.FrequencySingle:
			return "Ekonomi.md"
		default:
			return date.Format("2006-01") + ".md"
		}
	case domain.SeparateTransactions:
		return fmt.Sprintf("%s-%d.md", date.Format("2006-01-02"), r.now().UnixMilli())
	default:
		return expandTemplate(r.settings.DailyNotesFilename, date)
	}
}

// ResolvePath returns the absolute file path for the given day.
func (r *PathResolver) ResolvePath(date time.Time) string {
	return filepath.Join(r.settings.VaultPath, r.ResolveFolder(date), r.ResolveFilename(date))
}

// expandTemplate substitutes the date/time placeholder tokens in a folder or
// filename template. Compound tokens are listed before their prefixes so the
// replacer never splits them.
func expandTemplate(template string, t time.Time) string {
	return strings.NewReplacer(
		"{YYYY-MM-DD}", t.Format("2006-01-02"),
		"{YYYYMMDD}", t.Format("20060102"),
		"{YYYY}", t.Format("2006"),
		"{MM}", t.Format("01"),
		"{DD}", t.Format("02"),
		"{HHmm}", t.Format("1504"),
		"{HH}", t.Format("15"),
		"{mm}", t.Format("04"),
	).Replace(template)
}
