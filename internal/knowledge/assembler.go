package knowledge

import (
	"fmt"
	"strings"

	"staffbot/internal/models"
)

// DefaultUserName is the respectful stand-in used when a request carries no
// user name.
const DefaultUserName = "Ji"

// SectionSeparator is the visible delimiter between sections when more than
// one category matched.
const SectionSeparator = "\n\n---\n\n"

// Assembler composes formatted sections into one reply.
type Assembler struct{}

// NewAssembler creates a new response assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble prepends the greeting and joins the per-category sections in the
// given category order. When no category matched it returns the role's
// generic topic menu instead. Successfully formatted sections are never
// dropped.
func (a *Assembler) Assemble(userName string, role models.Role, categories []models.Category, sections map[models.Category]string) string {
	if userName == "" {
		userName = DefaultUserName
	}

	var parts []string
	for _, category := range categories {
		if text, ok := sections[category]; ok && text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return a.GenericMenu(role, userName)
	}

	return fmt.Sprintf("Namaste %s! 🙏\n\n%s", userName, strings.Join(parts, SectionSeparator))
}

// GenericMenu is the role-specific "what I can help with" reply used when a
// query matches nothing. It doubles as the polite fallback for internal
// failures, so a broken upstream looks like a low-confidence normal answer.
func (a *Assembler) GenericMenu(role models.Role, userName string) string {
	if userName == "" {
		userName = DefaultUserName
	}

	switch role {
	case models.RoleChef:
		return fmt.Sprintf("Namaste Chef %s! 👨‍🍳\n\nMain aapki help kar sakta hun:\n\n• **\"dal makhani recipe\"** - Complete cooking guide\n• **\"hygiene rules\"** - Kitchen safety standards\n• **\"training\"** - Team development guidance\n\nKya specific help chahiye?", userName)
	case models.RoleWaiter:
		return fmt.Sprintf("Namaste %s! 🍽️\n\nMain aapki service mein help kar sakta hun:\n\n• **\"dal makhani\"** - Guest explanation guide\n• **\"hygiene\"** - Service cleanliness standards\n• **\"training\"** - Customer service skills\n\nKya janna chahte hain?", userName)
	case models.RoleDeliveryBoy:
		return fmt.Sprintf("Namaste %s! 🚚\n\nDelivery guidance:\n\n• **\"hygiene rules\"** - Safe delivery protocols\n• **\"training\"** - Professional delivery skills\n\nKya help chahiye?", userName)
	case models.RoleSupervisor:
		return fmt.Sprintf("Namaste %s! 👥\n\nTeam management ke liye:\n\n• **\"hygiene\"** - Team monitoring guidelines\n• **\"training\"** - Leadership development\n\nKya guidance chahiye?", userName)
	case models.RoleManager, models.RoleOwner:
		return fmt.Sprintf("Namaste %s! 🏢\n\nOperations ke liye:\n\n• **\"hygiene\"** - Compliance standards\n• **\"training\"** - Staff development programs\n\nKya guidance chahiye?", userName)
	default:
		return fmt.Sprintf("Namaste %s! 🌱\n\nLearning resources:\n\n• **\"dal makhani\"** - Basic dish knowledge\n• **\"hygiene basics\"** - Cleanliness fundamentals\n• **\"training path\"** - Your development journey\n\nKya seekhna chahte hain?", userName)
	}
}

// TechnicalFallback is the apology used when content generation fails
// entirely. It stays friendly and repeats the topic menu, keyed by preferred
// language.
func TechnicalFallback(userName, preferredLanguage string) string {
	if userName == "" {
		userName = DefaultUserName
	}

	switch preferredLanguage {
	case "hindi":
		return fmt.Sprintf("माफ करें %s! 🙏\n\nTechnical समस्या है। कृपया थोड़ा इंतज़ार करके फिर try करें:\n• \"dal makhani recipe\"\n• \"hygiene rules\"\n• \"training\"", userName)
	case "english":
		return fmt.Sprintf("Sorry %s! 🙏\n\nThere's a technical issue. Please try:\n• \"dal makhani recipe\"\n• \"hygiene rules\"\n• \"training\"", userName)
	default:
		return fmt.Sprintf("Sorry %s! 🙏\n\nTechnical issue hai. Please try:\n• \"dal makhani recipe\"\n• \"hygiene rules\"\n• \"training\"\n\nDaily Tip: Patience se sab kuch theek ho jayega! ✨", userName)
	}
}
