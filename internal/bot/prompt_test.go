package bot

import (
	"strings"
	"testing"

	"staffbot/internal/models"
)

func TestBuildSystemPromptCarriesIdentityAndRules(t *testing.T) {
	cfg := models.DefaultBotConfig()

	prompt := BuildSystemPrompt(cfg, models.RoleChef, "EXCERPT TEXT")

	for _, want := range []string{
		cfg.SystemInstructions.Primary,
		cfg.Identity.Name,
		"Core rules:",
		"The employee you are talking to is a chef.",
		"cooking techniques",
		"Knowledge base excerpts (use ONLY this material):",
		"EXCERPT TEXT",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSystemPromptWithoutExcerpts(t *testing.T) {
	prompt := BuildSystemPrompt(models.DefaultBotConfig(), models.RoleWaiter, "")

	if !strings.Contains(prompt, "No knowledge base material matched") {
		t.Errorf("prompt should instruct the model to admit the gap:\n%s", prompt)
	}
	if strings.Contains(prompt, "Knowledge base excerpts") {
		t.Error("prompt should not announce excerpts it does not carry")
	}
}

func TestBuildSystemPromptUnknownRoleSkipsRoleSection(t *testing.T) {
	prompt := BuildSystemPrompt(models.DefaultBotConfig(), models.RoleOwner, "")

	if strings.Contains(prompt, "The employee you are talking to is a owner") {
		t.Error("roles without instructions should not get a role section")
	}
}
