package knowledge

import (
	"fmt"
	"strings"
	"testing"

	"staffbot/internal/models"
)

func TestAssembleSingleSection(t *testing.T) {
	assembler := NewAssembler()

	got := assembler.Assemble("Ramesh", models.RoleChef,
		[]models.Category{models.CategoryRecipe},
		map[models.Category]string{models.CategoryRecipe: "RECIPE SECTION"})

	want := "Namaste Ramesh! 🙏\n\nRECIPE SECTION"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleJoinsSectionsInCategoryOrder(t *testing.T) {
	assembler := NewAssembler()

	categories := []models.Category{models.CategoryRecipe, models.CategorySOP, models.CategoryTraining}
	sections := map[models.Category]string{
		models.CategoryTraining: "TRAINING",
		models.CategoryRecipe:   "RECIPE",
		models.CategorySOP:      "SOP",
	}

	got := assembler.Assemble("", models.RoleChef, categories, sections)
	want := "Namaste Ji! 🙏\n\nRECIPE" + SectionSeparator + "SOP" + SectionSeparator + "TRAINING"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleNoMatchReturnsGenericMenu(t *testing.T) {
	assembler := NewAssembler()

	got := assembler.Assemble("Priya", models.RoleWaiter, nil, nil)
	if got != assembler.GenericMenu(models.RoleWaiter, "Priya") {
		t.Errorf("no-match reply should be exactly the generic menu, got %q", got)
	}
	// The menu carries its own greeting; no extra one is prepended.
	if strings.Count(got, "Namaste") != 1 {
		t.Errorf("no-match reply should greet exactly once:\n%s", got)
	}
}

func TestGenericMenuPerRole(t *testing.T) {
	assembler := NewAssembler()

	wantWaiter := fmt.Sprintf("Namaste %s! 🍽️\n\nMain aapki service mein help kar sakta hun:\n\n• **\"dal makhani\"** - Guest explanation guide\n• **\"hygiene\"** - Service cleanliness standards\n• **\"training\"** - Customer service skills\n\nKya janna chahte hain?", "Priya")
	if got := assembler.GenericMenu(models.RoleWaiter, "Priya"); got != wantWaiter {
		t.Errorf("waiter menu = %q, want %q", got, wantWaiter)
	}

	cases := map[models.Role]string{
		models.RoleChef:        "👨‍🍳",
		models.RoleDeliveryBoy: "🚚",
		models.RoleSupervisor:  "👥",
		models.RoleManager:     "🏢",
		models.RoleOwner:       "🏢",
		models.RoleTrainee:     "🌱",
	}
	for role, marker := range cases {
		menu := assembler.GenericMenu(role, "")
		if !strings.Contains(menu, marker) {
			t.Errorf("GenericMenu(%s) missing marker %q:\n%s", role, marker, menu)
		}
		if !strings.Contains(menu, DefaultUserName) {
			t.Errorf("GenericMenu(%s) should address the default name", role)
		}
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	assembler := NewAssembler()

	categories := []models.Category{models.CategoryRecipe, models.CategorySOP}
	sections := map[models.Category]string{
		models.CategoryRecipe: "A",
		models.CategorySOP:    "B",
	}

	first := assembler.Assemble("Ji", models.RoleChef, categories, sections)
	for i := 0; i < 5; i++ {
		if got := assembler.Assemble("Ji", models.RoleChef, categories, sections); got != first {
			t.Fatalf("Assemble() changed between identical calls:\n%q\nvs\n%q", first, got)
		}
	}
}

func TestTechnicalFallbackLanguages(t *testing.T) {
	if got := TechnicalFallback("Amit", "hindi"); !strings.Contains(got, "माफ करें Amit") {
		t.Errorf("hindi fallback wrong: %q", got)
	}
	if got := TechnicalFallback("Amit", "english"); !strings.Contains(got, "Sorry Amit") || strings.Contains(got, "hai") {
		t.Errorf("english fallback wrong: %q", got)
	}
	if got := TechnicalFallback("", ""); !strings.Contains(got, "Sorry Ji") || !strings.Contains(got, "Daily Tip") {
		t.Errorf("default fallback wrong: %q", got)
	}
}
