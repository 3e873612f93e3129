package models

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"chef":         RoleChef,
		"CHEF":         RoleChef,
		" Waiter ":     RoleWaiter,
		"delivery-boy": RoleDeliveryBoy,
		"supervisor":   RoleSupervisor,
		"trainee":      RoleTrainee,
		"manager":      RoleManager,
		"owner":        RoleOwner,
	}
	for in, want := range cases {
		got, ok := ParseRole(in)
		if !ok || got != want {
			t.Errorf("ParseRole(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}

	if _, ok := ParseRole("astronaut"); ok {
		t.Error("ParseRole should reject unknown roles")
	}
}

func TestParseCategoryAcceptsPlurals(t *testing.T) {
	for _, in := range []string{"recipe", "recipes", "SOP", "sops", "training"} {
		if _, ok := ParseCategory(in); !ok {
			t.Errorf("ParseCategory(%q) rejected", in)
		}
	}
	if _, ok := ParseCategory("gossip"); ok {
		t.Error("ParseCategory should reject unknown categories")
	}
}

func TestDecodeContentMapRejectsUnknownRole(t *testing.T) {
	raw := map[string]json.RawMessage{
		"chef":      json.RawMessage(`{"ingredients":["dal"]}`),
		"astronaut": json.RawMessage(`{}`),
	}
	if _, err := DecodeContentMap(CategoryRecipe, raw); err == nil {
		t.Error("DecodeContentMap should reject unknown role keys")
	}
}

func TestDecodeContentMapByCategory(t *testing.T) {
	raw := map[string]json.RawMessage{
		"chef": json.RawMessage(`{"standards":["clean hands"],"wrongWay":"w","rightWay":"r"}`),
	}
	content, err := DecodeContentMap(CategorySOP, raw)
	if err != nil {
		t.Fatalf("DecodeContentMap() error: %v", err)
	}
	sop, ok := content[RoleChef].(SOPContent)
	if !ok {
		t.Fatalf("content decoded as %T, want SOPContent", content[RoleChef])
	}
	if len(sop.Standards) != 1 || sop.Coaching.WrongWay != "w" {
		t.Errorf("decoded content wrong: %+v", sop)
	}
}

func TestContentForFallsBackToTrainee(t *testing.T) {
	doc := &KnowledgeDocument{
		Category: CategoryRecipe,
		Content: map[Role]RoleContent{
			RoleChef:    RecipeContent{BasicInfo: "chef view"},
			RoleTrainee: RecipeContent{BasicInfo: "trainee view"},
		},
	}

	if c, ok := doc.ContentFor(RoleChef); !ok || c.(RecipeContent).BasicInfo != "chef view" {
		t.Errorf("ContentFor(chef) = %v, %v", c, ok)
	}
	if c, ok := doc.ContentFor(RoleWaiter); !ok || c.(RecipeContent).BasicInfo != "trainee view" {
		t.Errorf("ContentFor(waiter) should degrade to trainee, got %v, %v", c, ok)
	}

	doc.Content = map[Role]RoleContent{RoleChef: RecipeContent{}}
	if _, ok := doc.ContentFor(RoleWaiter); ok {
		t.Error("ContentFor without trainee slice should report false")
	}
}

func TestDocumentRowRoundTrip(t *testing.T) {
	doc := &KnowledgeDocument{
		ID:       "paneer-tikka",
		Title:    "Paneer Tikka",
		Category: CategoryRecipe,
		Tags:     []string{"starter"},
		IsActive: true,
		Version:  3,
		Content: map[Role]RoleContent{
			RoleTrainee: RecipeContent{BasicInfo: "tandoor starter"},
		},
	}

	row, err := FromKnowledgeDocument(doc)
	if err != nil {
		t.Fatalf("FromKnowledgeDocument() error: %v", err)
	}
	back, err := row.ToKnowledgeDocument()
	if err != nil {
		t.Fatalf("ToKnowledgeDocument() error: %v", err)
	}

	if back.ID != doc.ID || back.Title != doc.Title || back.Version != doc.Version {
		t.Errorf("round trip changed fields: %+v", back)
	}
	if back.Content[RoleTrainee].(RecipeContent).BasicInfo != "tandoor starter" {
		t.Errorf("round trip lost content: %+v", back.Content)
	}
}
