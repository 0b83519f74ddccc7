package markdown

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const (
	tableHeaderRow    = "| Tid | Belopp | Kategori | Beskrivning | Kvitto |"
	tableSeparatorRow = "|-----|--------|----------|-------------|--------|"
)

// Front-matter blocks on newly created notes. Informational only; the reader
// never parses them back.
type dailyNoteFrontMatter struct {
	Type string `yaml:"type"`
	Date string `yaml:"date"`
}

type econNoteFrontMatter struct {
	Type string `yaml:"type"`
	Date string `yaml:"date"`
}

type transactionNoteFrontMatter struct {
	Type     string   `yaml:"type"`
	Date     string   `yaml:"date"`
	Time     string   `yaml:"time"`
	Belopp   string   `yaml:"belopp"`
	Kategori string   `yaml:"kategori"`
	Tags     []string `yaml:"tags"`
}

// sectionWriter places a rendered entry at the correct position inside a note,
// creating the note from a template when it does not exist yet.
type sectionWriter struct {
	settings domain.VaultSettings
	now      func() time.Time
}

func newSectionWriter(settings domain.VaultSettings) *sectionWriter {
	return &sectionWriter{settings: settings, now: time.Now}
}

// writeDailyNote inserts the entry into the configured finance section of a
// daily note. A missing section is appended to the end of the file; a missing
// file is created from the full daily-note template.
func (w *sectionWriter) writeDailyNote(path, entry string) error {
	content, exists, err := readNote(path)
	if err != nil {
		return err
	}

	if !exists {
		return writeNote(path, w.dailyNoteTemplate(entry))
	}

	lines := strings.Split(content, "\n")
	headingIndex := indexOfLine(lines, w.settings.DailyNotesHeading)
	if headingIndex < 0 {
		return appendNote(path, w.newSection(w.settings.DailyNotesHeading, entry))
	}

	// Skip blank lines after the heading, then the table header and separator
	// rows when the dialect renders tables, so the entry lands below them.
	insert := headingIndex + 1
	for insert < len(lines) && strings.TrimSpace(lines[insert]) == "" {
		insert++
	}
	if w.settings.MarkdownFormat == domain.FormatTable && insert < len(lines) && strings.HasPrefix(lines[insert], "|") {
		insert += 2
	}
	return writeNote(path, strings.Join(insertLine(lines, insert, entry), "\n"))
}

// writeEconNote inserts the entry into the "## <date>" day-section of the
// dedicated finance note.
func (w *sectionWriter) writeEconNote(path, entry string, date time.Time) error {
	dayHeading := "## " + date.Format("2006-01-02")

	content, exists, err := readNote(path)
	if err != nil {
		return err
	}

	if !exists {
		return writeNote(path, w.econNoteTemplate(date, entry))
	}

	lines := strings.Split(content, "\n")
	headingIndex := indexOfLine(lines, dayHeading)
	if headingIndex < 0 {
		return appendNote(path, w.newDaySection(dayHeading, entry))
	}

	// Existing day-sections always carry the heading plus the two table rows.
	return writeNote(path, strings.Join(insertLine(lines, headingIndex+3, entry), "\n"))
}

// writeTransactionNote writes a brand-new note holding exactly one transaction.
// It never appends: the resolved filename is unique per write.
func (w *sectionWriter) writeTransactionNote(path string, txn domain.Transaction) error {
	tag := txn.Category.Tag(w.settings.TagFormat)

	front, err := renderFrontMatter(transactionNoteFrontMatter{
		Type:     "transaktion",
		Date:     txn.Date.Format("2006-01-02"),
		Time:     txn.Time.String(),
		Belopp:   amountText(txn.Amount),
		Kategori: strings.ToLower(txn.Category.Name),
		Tags:     []string{txn.Category.Emoji, "utgift"},
	})
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(front)
	b.WriteString("\n")
	fmt.Fprintf(&b, "# %s\n\n", txn.Description)
	fmt.Fprintf(&b, "**Belopp:** %s kr\n", amountText(txn.Amount))
	fmt.Fprintf(&b, "**Kategori:** %s\n", tag)
	fmt.Fprintf(&b, "**Datum:** %s %s\n", txn.Date.Format("2006-01-02"), txn.Time)
	if txn.ReceiptPath != "" {
		fmt.Fprintf(&b, "\n## Kvitto\n\n![[%s]]\n", txn.ReceiptPath)
	}
	return writeNote(path, b.String())
}

// dailyNoteTemplate builds a complete daily note around the first entry.
func (w *sectionWriter) dailyNoteTemplate(entry string) string {
	date := w.now().Format("2006-01-02")

	front, _ := renderFrontMatter(dailyNoteFrontMatter{Type: "daily", Date: date})

	var b strings.Builder
	b.WriteString(front)
	b.WriteString("\n")
	fmt.Fprintf(&b, "# %s\n\n", date)
	b.WriteString(w.settings.DailyNotesHeading + "\n\n")
	w.writeTableHeader(&b)
	b.WriteString(entry + "\n")
	return b.String()
}

// econNoteTemplate builds a complete dedicated finance note around the first
// entry, with a title derived from the aggregation frequency.
func (w *sectionWriter) econNoteTemplate(date time.Time, entry string) string {
	var title string
	switch w.settings.EconNoteFrequency {
	case domain.FrequencyYearly:
		title = fmt.Sprintf("Ekonomi %d", date.Year())
	case domain.FrequencySingle:
		title = "Ekonomi"
	default:
		title = fmt.Sprintf("Ekonomi %s %d", date.Month(), date.Year())
	}

	front, _ := renderFrontMatter(econNoteFrontMatter{Type: "ekonomi", Date: date.Format("2006-01-02")})

	// Day-sections keep the heading and table rows adjacent: later writes
	// insert three lines below the heading and must land after the separator.
	var b strings.Builder
	b.WriteString(front)
	b.WriteString("\n")
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "## %s\n", date.Format("2006-01-02"))
	w.writeTableHeader(&b)
	b.WriteString(entry + "\n")
	return b.String()
}

// newSection builds the block appended when a file lacks the finance heading.
func (w *sectionWriter) newSection(heading, entry string) string {
	var b strings.Builder
	b.WriteString("\n" + heading + "\n\n")
	w.writeTableHeader(&b)
	b.WriteString(entry + "\n")
	return b.String()
}

// newDaySection builds the block appended when the dedicated note lacks the
// day's heading. The day total is a placeholder kept for compatibility with
// notes written by earlier versions.
func (w *sectionWriter) newDaySection(dayHeading, entry string) string {
	var b strings.Builder
	b.WriteString("\n" + dayHeading + "\n")
	w.writeTableHeader(&b)
	b.WriteString(entry + "\n\n")
	b.WriteString("**Dagsumma:** 0.0 kr\n")
	return b.String()
}

func (w *sectionWriter) writeTableHeader(b *strings.Builder) {
	if w.settings.MarkdownFormat != domain.FormatTable {
		return
	}
	b.WriteString(tableHeaderRow + "\n")
	b.WriteString(tableSeparatorRow + "\n")
}

// renderFrontMatter marshals the value into a ----delimited YAML block.
func renderFrontMatter(v any) (string, error) {
	body, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}
	return "---\n" + string(body) + "---\n", nil
}

// readNote reads a note's full text, reporting whether the file exists.
func readNote(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read note: %w", err)
	}
	return string(data), true, nil
}

func writeNote(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

func appendNote(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open note for appending: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to append to note: %w", err)
	}
	return nil
}

// indexOfLine finds the first line equal to want, or -1.
func indexOfLine(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}

// insertLine inserts entry at index, clamped to the end of the slice.
func insertLine(lines []string, index int, entry string) []string {
	if index > len(lines) {
		index = len(lines)
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:index]...)
	out = append(out, entry)
	out = append(out, lines[index:]...)
	return out
}
