package config

import (
	"testing"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendBaseURL)

	assert.Empty(t, cfg.Vault.VaultPath)
	assert.Equal(t, domain.DailyNotes, cfg.Vault.StorageMethod)
	assert.Equal(t, "Journal/Daily/{YYYY}", cfg.Vault.DailyNotesFolder)
	assert.Equal(t, "{YYYY-MM-DD}.md", cfg.Vault.DailyNotesFilename)
	assert.Equal(t, "## 💰 Ekonomi", cfg.Vault.DailyNotesHeading)
	assert.Equal(t, domain.TagEmoji, cfg.Vault.TagFormat)
	assert.Equal(t, domain.FormatTable, cfg.Vault.MarkdownFormat)
	assert.Len(t, cfg.Vault.Categories, 8)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VAULT_PATH", "/srv/vault")
	t.Setenv("STORAGE_METHOD", "DEDICATED_ECON_NOTE")
	t.Setenv("ECON_NOTE_FREQUENCY", "YEARLY")
	t.Setenv("TAG_FORMAT", "NESTED")
	t.Setenv("MARKDOWN_FORMAT", "BULLET_LIST")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/vault", cfg.Vault.VaultPath)
	assert.Equal(t, domain.DedicatedEconNote, cfg.Vault.StorageMethod)
	assert.Equal(t, domain.FrequencyYearly, cfg.Vault.EconNoteFrequency)
	assert.Equal(t, domain.TagNested, cfg.Vault.TagFormat)
	assert.Equal(t, domain.FormatBulletList, cfg.Vault.MarkdownFormat)
}

func TestLoadConfig_UnknownEnumsFallBack(t *testing.T) {
	t.Setenv("STORAGE_METHOD", "SOMETHING_ELSE")
	t.Setenv("MARKDOWN_FORMAT", "XML")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.DailyNotes, cfg.Vault.StorageMethod)
	assert.Equal(t, domain.FormatTable, cfg.Vault.MarkdownFormat)
}

func TestParseCategories(t *testing.T) {
	fallback := domain.DefaultCategories()

	t.Run("empty keeps built-in list", func(t *testing.T) {
		assert.Equal(t, fallback, parseCategories("", fallback))
		assert.Equal(t, fallback, parseCategories("   ", fallback))
	})

	t.Run("parses name:emoji pairs", func(t *testing.T) {
		categories := parseCategories("Mat:🍔, Resor:✈️", fallback)
		require.Len(t, categories, 2)
		assert.Equal(t, domain.Category{Name: "Mat", Emoji: "🍔"}, categories[0])
		assert.Equal(t, domain.Category{Name: "Resor", Emoji: "✈️"}, categories[1])
	})

	t.Run("skips malformed pairs", func(t *testing.T) {
		categories := parseCategories("Mat:🍔,nocolon,:🎬,Namn:", fallback)
		require.Len(t, categories, 1)
		assert.Equal(t, "Mat", categories[0].Name)
	})

	t.Run("fully malformed keeps built-in list", func(t *testing.T) {
		assert.Equal(t, fallback, parseCategories("nocolon,,", fallback))
	})
}
