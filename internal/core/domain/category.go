package domain

import (
	"fmt"
	"strings"
)

// TagFormat selects how a category is rendered as a markdown tag.
type TagFormat string

const (
	TagEmoji    TagFormat = "EMOJI"    // #🍔
	TagText     TagFormat = "TEXT"     // #mat
	TagNested   TagFormat = "NESTED"   // #utgift/mat
	TagCombined TagFormat = "COMBINED" // #🍔 #mat
)

// TagFormatFromString maps stored option text to a TagFormat,
// falling back to TagEmoji on unknown input.
func TagFormatFromString(s string) TagFormat {
	switch TagFormat(strings.ToUpper(s)) {
	case TagEmoji, TagText, TagNested, TagCombined:
		return TagFormat(strings.ToUpper(s))
	default:
		return TagEmoji
	}
}

// Category classifies a transaction. The emoji glyph is the primary tag
// identifier; the color is cosmetic and never persisted per transaction.
type Category struct {
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"` // Hex display color, irrelevant to storage
	IsDefault bool   `json:"isDefault"`
}

// Tag renders the category as a markdown tag in the given format.
func (c Category) Tag(format TagFormat) string {
	switch format {
	case TagText:
		return "#" + strings.ToLower(c.Name)
	case TagNested:
		return "#utgift/" + strings.ToLower(c.Name)
	case TagCombined:
		return fmt.Sprintf("#%s #%s", c.Emoji, strings.ToLower(c.Name))
	default:
		return "#" + c.Emoji
	}
}

// DefaultCategories is the built-in category list. Övrigt is the catch-all and
// must stay last: unresolved tags on read fall back to the final list entry.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Mat", Emoji: "🍔", Color: "#4CAF50"},
		{Name: "Bensin", Emoji: "⛽", Color: "#F44336"},
		{Name: "Hem", Emoji: "🏠", Color: "#2196F3"},
		{Name: "Arbete", Emoji: "💼", Color: "#9C27B0"},
		{Name: "Hälsa", Emoji: "💊", Color: "#E91E63"},
		{Name: "Shopping", Emoji: "🛒", Color: "#FF9800"},
		{Name: "Nöje", Emoji: "🎬", Color: "#00BCD4"},
		{Name: "Övrigt", Emoji: "📱", Color: "#607D8B"},
	}
}

// ResolveCategory matches a tag token against the configured categories by emoji
// or lowercased name. When nothing matches it returns the last category in the
// list, which holds the catch-all by convention.
func ResolveCategory(categories []Category, identifier string) Category {
	for _, c := range categories {
		if c.Emoji == identifier || strings.ToLower(c.Name) == strings.ToLower(identifier) {
			return c
		}
	}
	return categories[len(categories)-1]
}
