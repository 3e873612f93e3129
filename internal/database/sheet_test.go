package database

import (
	"bytes"
	"testing"

	"staffbot/internal/knowledge"
	"staffbot/internal/models"
)

func TestWorkbookRoundTrip(t *testing.T) {
	docs := knowledge.SeedDocuments()
	tasks := []models.Task{
		{TaskID: "t-1", Title: "Deep clean tandoor", Role: "chef", Status: "pending"},
	}

	f, err := ExportWorkbook(docs, tasks)
	if err != nil {
		t.Fatalf("ExportWorkbook() error: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	imported, err := ImportDocuments(&buf)
	if err != nil {
		t.Fatalf("ImportDocuments() error: %v", err)
	}
	if len(imported) != len(docs) {
		t.Fatalf("imported %d documents, want %d", len(imported), len(docs))
	}

	byID := map[string]*models.KnowledgeDocument{}
	for _, doc := range imported {
		byID[doc.ID] = doc
	}

	dal, ok := byID["dal-makhani"]
	if !ok {
		t.Fatal("dal-makhani missing after round trip")
	}
	if dal.Category != models.CategoryRecipe || !dal.IsActive {
		t.Errorf("dal-makhani metadata wrong: %+v", dal)
	}
	chef, ok := dal.Content[models.RoleChef].(models.RecipeContent)
	if !ok {
		t.Fatalf("chef content decoded as %T", dal.Content[models.RoleChef])
	}
	if len(chef.Ingredients) == 0 || chef.Coaching.WrongWay == "" {
		t.Errorf("chef content lost fields: %+v", chef)
	}
}

func TestImportSkipsBlankRowsAndHeader(t *testing.T) {
	f, err := ExportWorkbook(nil, nil)
	if err != nil {
		t.Fatalf("ExportWorkbook() error: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	docs, err := ImportDocuments(&buf)
	if err != nil {
		t.Fatalf("ImportDocuments() error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("empty workbook should import no documents, got %d", len(docs))
	}
}
