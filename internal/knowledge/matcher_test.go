package knowledge

import (
	"testing"

	"staffbot/internal/models"
)

func TestMatchSingleCategory(t *testing.T) {
	matcher := NewMatcher()

	cases := map[string]models.Category{
		"Dal Makhani kaise banate hain?": models.CategoryRecipe,
		"RECIPE bataiye":                 models.CategoryRecipe,
		"दाल मखनी ke baare mein":         models.CategoryRecipe,
		"hygiene rules kya hain":         models.CategorySOP,
		"सफाई kaise karein":              models.CategorySOP,
		"cleanliness standards":          models.CategorySOP,
		"training path dikhaiye":         models.CategoryTraining,
		"mujhe प्रशिक्षण chahiye":        models.CategoryTraining,
		"kya main learn kar sakta hun":   models.CategoryTraining,
	}

	for query, want := range cases {
		got := matcher.Match(query)
		if len(got) != 1 {
			t.Errorf("Match(%q) = %v, want exactly [%s]", query, got, want)
			continue
		}
		if got[0] != want {
			t.Errorf("Match(%q) = %v, want [%s]", query, got, want)
		}
	}
}

func TestMatchMultipleCategoriesInDeclarationOrder(t *testing.T) {
	matcher := NewMatcher()

	got := matcher.Match("dal makhani recipe aur hygiene training dono bataiye")
	want := []models.Category{models.CategoryRecipe, models.CategorySOP, models.CategoryTraining}

	if len(got) != len(want) {
		t.Fatalf("Match() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Match()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMatchNoCategory(t *testing.T) {
	matcher := NewMatcher()

	for _, query := range []string{"", "namaste", "salary kab milegi"} {
		if got := matcher.Match(query); len(got) != 0 {
			t.Errorf("Match(%q) = %v, want no categories", query, got)
		}
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	matcher := NewMatcher()

	lower := matcher.Match("dal makhani recipe")
	upper := matcher.Match("DAL MAKHANI RECIPE")

	if len(lower) != len(upper) {
		t.Fatalf("case changed the match: %v vs %v", lower, upper)
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Errorf("case changed category %d: %s vs %s", i, lower[i], upper[i])
		}
	}
}

func TestKeywordsCoverEveryCategory(t *testing.T) {
	matcher := NewMatcher()

	for _, category := range []models.Category{models.CategoryRecipe, models.CategorySOP, models.CategoryTraining} {
		if len(matcher.Keywords(category)) == 0 {
			t.Errorf("Keywords(%s) is empty", category)
		}
	}
}
