package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
)

// Category classifies a knowledge document.
type Category string

const (
	CategoryRecipe   Category = "recipe"
	CategorySOP      Category = "sop"
	CategoryTraining Category = "training"
)

// Categories lists all document categories in the order their sections
// appear in an assembled reply.
var Categories = []Category{CategoryRecipe, CategorySOP, CategoryTraining}

// ParseCategory resolves a category string, accepting the plural spellings
// used by older knowledge exports.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recipe", "recipes":
		return CategoryRecipe, true
	case "sop", "sops":
		return CategorySOP, true
	case "training":
		return CategoryTraining, true
	}
	return "", false
}

// Role is the staff position of the requesting user.
type Role string

const (
	RoleChef        Role = "chef"
	RoleWaiter      Role = "waiter"
	RoleDeliveryBoy Role = "delivery-boy"
	RoleSupervisor  Role = "supervisor"
	RoleTrainee     Role = "trainee"
	RoleManager     Role = "manager"
	RoleOwner       Role = "owner"
)

// DefaultRole is the role content falls back to when a document carries no
// slice for the requesting role.
const DefaultRole = RoleTrainee

// Roles lists every recognized staff role.
var Roles = []Role{RoleChef, RoleWaiter, RoleDeliveryBoy, RoleSupervisor, RoleTrainee, RoleManager, RoleOwner}

// ParseRole resolves a role string, ignoring case and surrounding
// whitespace. Unknown roles report false.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// RoleContent is the per-role slice of a knowledge document. Each category
// uses exactly one concrete type, so formatters can switch exhaustively
// instead of probing for fields.
type RoleContent interface {
	isRoleContent()
}

// Coaching is the trailing block every role slice carries regardless of
// category: the Wrong Way / Right Way pair, an assignment, and a daily tip.
type Coaching struct {
	WrongWay   string `json:"wrongWay,omitempty"`
	RightWay   string `json:"rightWay,omitempty"`
	Assignment string `json:"assignment,omitempty"`
	DailyTip   string `json:"dailyTip,omitempty"`
}

// RecipeContent is the role slice of a recipe document. Which fact fields
// are populated depends on the audience: kitchen roles get ingredients and
// method, service roles get guest-facing descriptions, trainees get basics.
type RecipeContent struct {
	Ingredients      []string `json:"ingredients,omitempty"`
	Method           []string `json:"method,omitempty"`
	ChefTips         []string `json:"chefTips,omitempty"`
	Description      string   `json:"description,omitempty"`
	CookingTime      string   `json:"cookingTime,omitempty"`
	ServingStyle     string   `json:"servingStyle,omitempty"`
	PairingOptions   []string `json:"pairingOptions,omitempty"`
	Allergens        []string `json:"allergens,omitempty"`
	GuestDescription string   `json:"guestDescription,omitempty"`
	Upselling        []string `json:"upselling,omitempty"`
	BasicInfo        string   `json:"basicInfo,omitempty"`
	KeyPoints        []string `json:"keyPoints,omitempty"`
	WhySpecial       string   `json:"whySpecial,omitempty"`
	Coaching
}

// SOPContent is the role slice of a standard-operating-procedure document.
type SOPContent struct {
	Standards        []string `json:"standards,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Protocol         []string `json:"protocol,omitempty"`
	Coaching
}

// TrainingContent is the role slice of a training-program document.
type TrainingContent struct {
	Modules      []string `json:"modules,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	LearningPath []string `json:"learningPath,omitempty"`
	Fundamentals []string `json:"fundamentals,omitempty"`
	Coaching
}

func (RecipeContent) isRoleContent() {}
func (SOPContent) isRoleContent() {}
func (TrainingContent) isRoleContent() {}

// DecodeRoleContent unmarshals a raw role slice into the concrete content
// type for the given category.
func DecodeRoleContent(category Category, raw json.RawMessage) (RoleContent, error) {
	switch category {
	case CategoryRecipe:
		var c RecipeContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case CategorySOP:
		var c SOPContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case CategoryTraining:
		var c TrainingContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown category: %s", category)
}

// DecodeContentMap unmarshals a role→slice map for the given category and
// rejects keys outside the recognized role set.
func DecodeContentMap(category Category, raw map[string]json.RawMessage) (map[Role]RoleContent, error) {
	content := make(map[Role]RoleContent, len(raw))
	for key, value := range raw {
		role, ok := ParseRole(key)
		if !ok {
			return nil, fmt.Errorf("unrecognized role %q in document content", key)
		}
		rc, err := DecodeRoleContent(category, value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s content for role %s: %w", category, role, err)
		}
		content[role] = rc
	}
	return content, nil
}

// KnowledgeDocument is a single entry in the knowledge store. Documents are
// immutable once loaded; administrative updates replace the whole document.
type KnowledgeDocument struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Category   Category             `json:"category"`
	Tags       []string             `json:"tags"`
	Content    map[Role]RoleContent `json:"content"`
	IsActive   bool                 `json:"isActive"`
	UploadedBy string               `json:"uploadedBy,omitempty"`
	Version    int                  `json:"version"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// ContentFor returns the role slice for the given role, degrading to the
// default role's slice when absent. The second result reports whether any
// usable slice was found.
func (d *KnowledgeDocument) ContentFor(role Role) (RoleContent, bool) {
	if c, ok := d.Content[role]; ok {
		return c, true
	}
	if c, ok := d.Content[DefaultRole]; ok {
		return c, true
	}
	return nil, false
}

// StringSlice represents a slice of strings that can be stored in a text column.
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Document is the persisted form of a KnowledgeDocument. Role content is
// serialized to a JSON text column the same way recipe ingredients were in
// earlier schema revisions.
type Document struct {
	gorm.Model
	DocID       string `gorm:"column:doc_id;unique_index"`
	Title       string
	Category    string
	Tags        StringSlice `gorm:"type:text"`
	ContentJSON string      `gorm:"type:text"`
	IsActive    bool
	UploadedBy  string
	Version     int
}

// TableName sets the table name for Document
func (Document) TableName() string {
	return "knowledge_documents"
}

// ToKnowledgeDocument deserializes the stored row into a domain document.
func (d *Document) ToKnowledgeDocument() (*KnowledgeDocument, error) {
	category, ok := ParseCategory(d.Category)
	if !ok {
		return nil, fmt.Errorf("document %s has unknown category %q", d.DocID, d.Category)
	}

	var raw map[string]json.RawMessage
	if d.ContentJSON != "" {
		if err := json.Unmarshal([]byte(d.ContentJSON), &raw); err != nil {
			return nil, fmt.Errorf("document %s has invalid content: %w", d.DocID, err)
		}
	}
	content, err := DecodeContentMap(category, raw)
	if err != nil {
		return nil, err
	}

	return &KnowledgeDocument{
		ID:         d.DocID,
		Title:      d.Title,
		Category:   category,
		Tags:       d.Tags,
		Content:    content,
		IsActive:   d.IsActive,
		UploadedBy: d.UploadedBy,
		Version:    d.Version,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

// FromKnowledgeDocument serializes a domain document for storage.
func FromKnowledgeDocument(doc *KnowledgeDocument) (*Document, error) {
	data, err := json.Marshal(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("serialize content for %s: %w", doc.ID, err)
	}

	return &Document{
		DocID:       doc.ID,
		Title:       doc.Title,
		Category:    string(doc.Category),
		Tags:        StringSlice(doc.Tags),
		ContentJSON: string(data),
		IsActive:    doc.IsActive,
		UploadedBy:  doc.UploadedBy,
		Version:     doc.Version,
	}, nil
}
