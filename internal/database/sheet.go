package database

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"staffbot/internal/models"
)

// Worksheet names inside the exported workbook.
const (
	DocumentsSheet = "Documents"
	TasksSheet     = "Tasks"
)

var documentHeader = []interface{}{"ID", "Title", "Category", "Tags", "Active", "Uploaded By", "Version", "Content"}
var taskHeader = []interface{}{"Task ID", "Title", "Description", "Role", "Assignee", "Status", "Reminder", "Created By"}

// ExportWorkbook renders the knowledge base and task list as an Excel
// workbook for offline review by restaurant management.
func ExportWorkbook(docs []*models.KnowledgeDocument, tasks []models.Task) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", DocumentsSheet)
	if _, err := f.NewSheet(TasksSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(DocumentsSheet, "A1", &documentHeader); err != nil {
		return nil, err
	}
	for i, doc := range docs {
		content, err := encodeContent(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding document %s: %w", doc.ID, err)
		}
		row := []interface{}{
			doc.ID,
			doc.Title,
			string(doc.Category),
			strings.Join(doc.Tags, ", "),
			doc.IsActive,
			doc.UploadedBy,
			doc.Version,
			content,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(DocumentsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(TasksSheet, "A1", &taskHeader); err != nil {
		return nil, err
	}
	for i, task := range tasks {
		row := []interface{}{
			task.TaskID,
			task.Title,
			task.Description,
			task.Role,
			task.Assignee,
			task.Status,
			task.Reminder,
			task.CreatedBy,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(TasksSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ImportDocuments reads knowledge documents back from an exported workbook.
// The header row is skipped; blank rows are ignored.
func ImportDocuments(r io.Reader) ([]*models.KnowledgeDocument, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DocumentsSheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet: %w", DocumentsSheet, err)
	}

	var docs []*models.KnowledgeDocument
	for i, row := range rows {
		if i == 0 || len(row) == 0 || cell(row, 0) == "" {
			continue
		}
		doc, err := documentFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func documentFromRow(row []string) (*models.KnowledgeDocument, error) {
	category, ok := models.ParseCategory(cell(row, 2))
	if !ok {
		return nil, fmt.Errorf("unknown category %q", cell(row, 2))
	}

	var raw map[string]json.RawMessage
	if text := cell(row, 7); text != "" {
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("invalid content: %w", err)
		}
	}
	content, err := models.DecodeContentMap(category, raw)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, tag := range strings.Split(cell(row, 3), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	active, _ := strconv.ParseBool(cell(row, 4))
	version, _ := strconv.Atoi(cell(row, 6))
	if version == 0 {
		version = 1
	}

	return &models.KnowledgeDocument{
		ID:         cell(row, 0),
		Title:      cell(row, 1),
		Category:   category,
		Tags:       tags,
		Content:    content,
		IsActive:   active,
		UploadedBy: cell(row, 5),
		Version:    version,
	}, nil
}

func encodeContent(doc *models.KnowledgeDocument) (string, error) {
	if len(doc.Content) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(doc.Content)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
