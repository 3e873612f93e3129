package knowledge

import (
	"fmt"
	"strings"

	"staffbot/internal/models"
)

// placeholder rendered when a template's primary facts are missing from the
// role slice, so the assembler always receives a non-empty section for a
// matched category.
const placeholder = "Yeh detail abhi documented nahi hai - please supervisor se puchiye."

// Formatter renders a knowledge document's role slice into the fixed
// bullet-point teaching template for its category.
type Formatter struct{}

// NewFormatter creates a new role formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders the document for the given role. Content falls back to the
// trainee slice when the role has none; the second result is false only when
// neither is present. The rendering itself is pure and never fails: missing
// fields render as placeholders.
func (f *Formatter) Format(doc *models.KnowledgeDocument, role models.Role) (string, bool) {
	content, ok := doc.ContentFor(role)
	if !ok {
		return "", false
	}

	switch c := content.(type) {
	case models.RecipeContent:
		return f.formatRecipe(doc, role, c), true
	case models.SOPContent:
		return f.formatSOP(doc, role, c), true
	case models.TrainingContent:
		return f.formatTraining(doc, role, c), true
	default:
		return "", false
	}
}

func (f *Formatter) formatRecipe(doc *models.KnowledgeDocument, role models.Role, c models.RecipeContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍛 **%s - %s**\n\n", doc.Title, recipeHeading(role))

	facts := false
	if len(c.Ingredients) > 0 {
		shown := c.Ingredients
		if len(shown) > 5 {
			shown = shown[:5]
		}
		fmt.Fprintf(&b, "• **Ingredients:** %s\n\n", strings.Join(shown, ", "))
		facts = true
	}
	if len(c.Method) > 0 {
		b.WriteString("• **Method:**\n")
		for i, step := range c.Method {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
		b.WriteString("\n")
		facts = true
	}
	if c.Description != "" {
		fmt.Fprintf(&b, "• **Description:** %s\n", c.Description)
		facts = true
	}
	if c.CookingTime != "" {
		fmt.Fprintf(&b, "• **Cooking Time:** %s\n", c.CookingTime)
		facts = true
	}
	if len(c.PairingOptions) > 0 {
		fmt.Fprintf(&b, "• **Pairing:** %s\n", strings.Join(c.PairingOptions, ", "))
		facts = true
	}
	if c.GuestDescription != "" {
		fmt.Fprintf(&b, "• **Guest Story:** %s\n", c.GuestDescription)
		facts = true
	}
	if c.BasicInfo != "" {
		fmt.Fprintf(&b, "• **What is it:** %s\n", c.BasicInfo)
		facts = true
	}
	if len(c.KeyPoints) > 0 {
		b.WriteString("\n• **Key Points:**\n")
		for _, point := range c.KeyPoints {
			fmt.Fprintf(&b, "  - %s\n", point)
		}
		facts = true
	}
	if c.WhySpecial != "" {
		fmt.Fprintf(&b, "\n• **Why Special:** %s\n", c.WhySpecial)
		facts = true
	}
	if !facts {
		fmt.Fprintf(&b, "• **Ingredients:** %s\n", placeholder)
	}

	b.WriteString("\n")
	writeCoaching(&b, c.Coaching)
	return b.String()
}

func (f *Formatter) formatSOP(doc *models.KnowledgeDocument, role models.Role, c models.SOPContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧼 **%s - %s Standards**\n\n", doc.Title, roleTitle(role))

	facts := false
	if len(c.Standards) > 0 {
		b.WriteString("• **Standards:**\n")
		for _, s := range c.Standards {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		facts = true
	}
	if len(c.Responsibilities) > 0 {
		if facts {
			b.WriteString("\n")
		}
		b.WriteString("• **Responsibilities:**\n")
		for _, r := range c.Responsibilities {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
		facts = true
	}
	if len(c.Protocol) > 0 {
		if facts {
			b.WriteString("\n")
		}
		b.WriteString("• **Protocol:**\n")
		for _, p := range c.Protocol {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
		facts = true
	}
	if !facts {
		fmt.Fprintf(&b, "• **Standards:** %s\n", placeholder)
	}

	b.WriteString("\n")
	writeCoaching(&b, c.Coaching)
	return b.String()
}

func (f *Formatter) formatTraining(doc *models.KnowledgeDocument, role models.Role, c models.TrainingContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎓 **%s - %s Development**\n\n", doc.Title, roleTitle(role))

	facts := false
	if len(c.Modules) > 0 {
		b.WriteString("• **Training Modules:**\n")
		for _, m := range limit(c.Modules, 4) {
			fmt.Fprintf(&b, "  - %s\n", m)
		}
		facts = true
	}
	if len(c.Skills) > 0 {
		if facts {
			b.WriteString("\n")
		}
		b.WriteString("• **Key Skills:**\n")
		for _, s := range limit(c.Skills, 3) {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		facts = true
	}
	if len(c.LearningPath) > 0 {
		if facts {
			b.WriteString("\n")
		}
		b.WriteString("• **Learning Path:**\n")
		for _, step := range c.LearningPath {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
		facts = true
	}
	if len(c.Fundamentals) > 0 {
		if facts {
			b.WriteString("\n")
		}
		b.WriteString("• **Fundamentals:**\n")
		for _, item := range c.Fundamentals {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
		facts = true
	}
	if !facts {
		fmt.Fprintf(&b, "• **Training Modules:** %s\n", placeholder)
	}

	b.WriteString("\n")
	writeCoaching(&b, c.Coaching)
	return b.String()
}

// writeCoaching renders the Wrong Way / Right Way pair, assignment, and
// daily tip. Every matched section ends with this block, placeholders
// included, so the teaching structure is always visible.
func writeCoaching(b *strings.Builder, c models.Coaching) {
	fmt.Fprintf(b, "• **Wrong Way:** %s\n", orPlaceholder(c.WrongWay))
	fmt.Fprintf(b, "• **Right Way:** %s\n\n", orPlaceholder(c.RightWay))
	fmt.Fprintf(b, "• **Assignment:** %s\n\n", orPlaceholder(c.Assignment))
	fmt.Fprintf(b, "• **Daily Tip:** %s", orPlaceholder(c.DailyTip))
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func recipeHeading(role models.Role) string {
	switch role {
	case models.RoleChef:
		return "Chef Level Recipe"
	case models.RoleWaiter:
		return "Service Knowledge"
	default:
		return "Learning Basics"
	}
}

// roleTitle capitalizes a role for use in section headings.
func roleTitle(role models.Role) string {
	s := string(role)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
