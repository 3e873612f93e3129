package bot

import (
	"fmt"
	"strings"

	"staffbot/internal/models"
)

// BuildSystemPrompt assembles the system prompt for the LLM path from the
// externally supplied bot configuration plus the same knowledge excerpts the
// templated path renders. Both paths are grounded in the same store, so a
// model answer can never cite material the template path doesn't have.
func BuildSystemPrompt(cfg *models.BotConfig, role models.Role, excerpts string) string {
	var b strings.Builder

	b.WriteString(cfg.SystemInstructions.Primary)
	b.WriteString("\n\n")

	if cfg.Identity.Name != "" {
		fmt.Fprintf(&b, "You are %q, %s. Personality: %s. Language: %s.\n\n",
			cfg.Identity.Name, cfg.Identity.Role, cfg.Identity.Personality, cfg.Identity.LanguagePreference)
	}

	if len(cfg.SystemInstructions.CoreRules) > 0 {
		b.WriteString("Core rules:\n")
		for _, rule := range cfg.SystemInstructions.CoreRules {
			fmt.Fprintf(&b, "- %s\n", rule)
		}
		b.WriteString("\n")
	}

	if ri, ok := cfg.RoleInstructions[string(role)]; ok {
		fmt.Fprintf(&b, "The employee you are talking to is a %s.\n", role)
		if len(ri.Focus) > 0 {
			fmt.Fprintf(&b, "Focus areas: %s.\n", strings.Join(ri.Focus, ", "))
		}
		if ri.Tone != "" {
			fmt.Fprintf(&b, "Tone: %s.\n", ri.Tone)
		}
		for _, example := range ri.Examples {
			fmt.Fprintf(&b, "Teaching example: %s\n", example)
		}
		b.WriteString("\n")
	}

	if len(cfg.BehaviorModifiers.SpecialInstructions) > 0 {
		b.WriteString("Special instructions:\n")
		for _, instr := range cfg.BehaviorModifiers.SpecialInstructions {
			fmt.Fprintf(&b, "- %s\n", instr)
		}
		b.WriteString("\n")
	}

	if cfg.Formatting.MaxResponseLength > 0 {
		fmt.Fprintf(&b, "Keep the reply under %d words.\n\n", cfg.Formatting.MaxResponseLength)
	}

	if excerpts != "" {
		b.WriteString("Knowledge base excerpts (use ONLY this material):\n\n")
		b.WriteString(excerpts)
	} else {
		b.WriteString("No knowledge base material matched this question. Respectfully say the information is not in the knowledge base and list the topics you can help with.")
	}

	return b.String()
}
