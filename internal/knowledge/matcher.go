package knowledge

import (
	"strings"

	"staffbot/internal/models"
)

// categoryKeywords maps each category to the substrings that trigger it.
// Lists mix Latin-script Hinglish terms and Devanagari terms; matching is
// plain substring containment, not tokenized or fuzzy.
var categoryKeywords = map[models.Category][]string{
	models.CategoryRecipe: {
		"dal makhani",
		"दाल मखनी",
		"recipe",
	},
	models.CategorySOP: {
		"hygiene",
		"सफाई",
		"cleanliness",
		"sop",
	},
	models.CategoryTraining: {
		"training",
		"प्रशिक्षण",
		"सिखाना",
		"learn",
	},
}

// Matcher maps a free-text query to the document categories it mentions.
type Matcher struct{}

// NewMatcher creates a new intent matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns every category whose keyword list intersects the query, in
// category declaration order (recipe, sop, training). Categories are not
// mutually exclusive; an empty result means no match, which the assembler
// resolves into a generic help message rather than an error.
func (m *Matcher) Match(query string) []models.Category {
	lower := strings.ToLower(query)

	var matched []models.Category
	for _, category := range models.Categories {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				matched = append(matched, category)
				break
			}
		}
	}
	return matched
}

// Keywords returns the trigger list for a category. Used by the stats
// endpoint and the prompt builder's topic menu.
func (m *Matcher) Keywords(category models.Category) []string {
	keywords := categoryKeywords[category]
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}
