package config

import (
	"strings"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	FrontendBaseURL string
	Vault           domain.VaultSettings
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	defaults := domain.DefaultVaultSettings()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("VAULT_PATH", "")
	viper.SetDefault("STORAGE_METHOD", string(defaults.StorageMethod))
	viper.SetDefault("DAILY_NOTES_FOLDER", defaults.DailyNotesFolder)
	viper.SetDefault("DAILY_NOTES_FILENAME", defaults.DailyNotesFilename)
	viper.SetDefault("DAILY_NOTES_HEADING", defaults.DailyNotesHeading)
	viper.SetDefault("ECON_NOTE_FOLDER", defaults.EconNoteFolder)
	viper.SetDefault("ECON_NOTE_FREQUENCY", string(defaults.EconNoteFrequency))
	viper.SetDefault("RECEIPT_FOLDER", defaults.ReceiptFolder)
	viper.SetDefault("RECEIPT_FILENAME_FORMAT", defaults.ReceiptFilename)
	viper.SetDefault("TAG_FORMAT", string(defaults.TagFormat))
	viper.SetDefault("MARKDOWN_FORMAT", string(defaults.MarkdownFormat))
	viper.SetDefault("CATEGORIES", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		Vault: domain.VaultSettings{
			VaultPath:          viper.GetString("VAULT_PATH"),
			StorageMethod:      domain.StorageMethodFromString(viper.GetString("STORAGE_METHOD")),
			DailyNotesFolder:   viper.GetString("DAILY_NOTES_FOLDER"),
			DailyNotesFilename: viper.GetString("DAILY_NOTES_FILENAME"),
			DailyNotesHeading:  viper.GetString("DAILY_NOTES_HEADING"),
			EconNoteFolder:     viper.GetString("ECON_NOTE_FOLDER"),
			EconNoteFrequency:  domain.EconNoteFrequencyFromString(viper.GetString("ECON_NOTE_FREQUENCY")),
			ReceiptFolder:      viper.GetString("RECEIPT_FOLDER"),
			ReceiptFilename:    viper.GetString("RECEIPT_FILENAME_FORMAT"),
			TagFormat:          domain.TagFormatFromString(viper.GetString("TAG_FORMAT")),
			MarkdownFormat:     domain.MarkdownFormatFromString(viper.GetString("MARKDOWN_FORMAT")),
			Categories:         parseCategories(viper.GetString("CATEGORIES"), defaults.Categories),
		},
	}

	return cfg, nil
}

// parseCategories parses a "name:emoji,name:emoji" override list. The built-in
// list is kept whenever the override is empty or fully malformed, so the store
// always has a non-empty category list with a catch-all at the end.
func parseCategories(raw string, fallback []domain.Category) []domain.Category {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}

	var categories []domain.Category
	for _, pair := range strings.Split(raw, ",") {
		name, emoji, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" || emoji == "" {
			continue
		}
		categories = append(categories, domain.Category{Name: name, Emoji: emoji})
	}
	if len(categories) == 0 {
		return fallback
	}
	return categories
}
