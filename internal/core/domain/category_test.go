package domain_test

import (
	"testing"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Tag(t *testing.T) {
	mat := domain.Category{Name: "Mat", Emoji: "🍔"}

	tests := []struct {
		name   string
		format domain.TagFormat
		want   string
	}{
		{name: "emoji format", format: domain.TagEmoji, want: "#🍔"},
		{name: "text format lowercases the name", format: domain.TagText, want: "#mat"},
		{name: "nested format", format: domain.TagNested, want: "#utgift/mat"},
		{name: "combined format", format: domain.TagCombined, want: "#🍔 #mat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mat.Tag(tt.format))
		})
	}
}

func TestResolveCategory(t *testing.T) {
	categories := domain.DefaultCategories()

	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{name: "matches by emoji", identifier: "🍔", want: "Mat"},
		{name: "matches by lowercased name", identifier: "bensin", want: "Bensin"},
		{name: "name match is case-insensitive", identifier: "NÖJE", want: "Nöje"},
		{name: "unknown token falls back to last category", identifier: "okänd", want: "Övrigt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveCategory(categories, tt.identifier)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestDefaultCategories_CatchAllIsLast(t *testing.T) {
	categories := domain.DefaultCategories()
	assert.Len(t, categories, 8)
	assert.Equal(t, "Övrigt", categories[len(categories)-1].Name)
}

func TestEnumFromString_FallsBackOnUnknown(t *testing.T) {
	assert.Equal(t, domain.DailyNotes, domain.StorageMethodFromString("nonsense"))
	assert.Equal(t, domain.SeparateTransactions, domain.StorageMethodFromString("separate_transactions"))
	assert.Equal(t, domain.FormatTable, domain.MarkdownFormatFromString(""))
	assert.Equal(t, domain.FormatBulletList, domain.MarkdownFormatFromString("bullet_list"))
	assert.Equal(t, domain.FrequencyMonthly, domain.EconNoteFrequencyFromString("weekly"))
	assert.Equal(t, domain.TagEmoji, domain.TagFormatFromString("bogus"))
}
