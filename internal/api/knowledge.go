package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staffbot/internal/database"
	"staffbot/internal/models"
)

// DocumentRequest is the inbound shape for document writes. Content arrives
// as raw role→JSON and is decoded against the document's category.
type DocumentRequest struct {
	ID         string                     `json:"id"`
	Title      string                     `json:"title"`
	Category   string                     `json:"category"`
	Tags       []string                   `json:"tags"`
	Content    map[string]json.RawMessage `json:"content"`
	IsActive   *bool                      `json:"isActive"`
	UploadedBy string                     `json:"uploadedBy"`
}

func (r *DocumentRequest) toDocument() (*models.KnowledgeDocument, error) {
	category, ok := models.ParseCategory(r.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", r.Category)
	}
	content, err := models.DecodeContentMap(category, r.Content)
	if err != nil {
		return nil, err
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.KnowledgeDocument{
		ID:         r.ID,
		Title:      r.Title,
		Category:   category,
		Tags:       r.Tags,
		Content:    content,
		IsActive:   active,
		UploadedBy: r.UploadedBy,
		Version:    1,
		UpdatedAt:  time.Now().UTC(),
	}, nil
}

// ListDocuments returns every document in the store
func (s *Server) ListDocuments(c *gin.Context) {
	docs := s.Store.Documents()
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

// GetDocument returns a single document by ID
func (s *Server) GetDocument(c *gin.Context) {
	doc, ok := s.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// CreateDocument adds a new document to the store
func (s *Server) CreateDocument(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	doc, err := req.toDocument()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Store.Add(doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UpdateDocument replaces an existing document
func (s *Server) UpdateDocument(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.ID = c.Param("id")
	if _, ok := s.Store.Get(req.ID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	doc, err := req.toDocument()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Store.Update(doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes a document from the store
func (s *Server) DeleteDocument(c *gin.Context) {
	if err := s.Store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// SearchDocuments runs a substring search over the store
func (s *Server) SearchDocuments(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}
	docs := s.Store.Search(query)
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

// KnowledgeStats summarizes the store
func (s *Server) KnowledgeStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.GetStats())
}

// BulkUpload adds several documents in one request. Valid documents are
// stored even when others fail; failures are reported per document.
func (s *Server) BulkUpload(c *gin.Context) {
	var reqs []DocumentRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var stored int
	failures := map[string]string{}
	for i := range reqs {
		doc, err := reqs[i].toDocument()
		if err != nil {
			failures[reqs[i].ID] = err.Error()
			continue
		}
		if err := s.Store.Add(doc); err != nil {
			failures[doc.ID] = err.Error()
			continue
		}
		stored++
	}
	c.JSON(http.StatusOK, gin.H{"stored": stored, "failed": failures})
}

// ExportWorkbook streams the knowledge base and tasks as an Excel file
func (s *Server) ExportWorkbook(c *gin.Context) {
	tasks, err := s.Tasks.ListTasks("", "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	f, err := database.ExportWorkbook(s.Store.Documents(), tasks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="staffbot-knowledge.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ImportWorkbook loads documents from an uploaded Excel file
func (s *Server) ImportWorkbook(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	docs, err := database.ImportDocuments(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var stored int
	failures := map[string]string{}
	for _, doc := range docs {
		if _, exists := s.Store.Get(doc.ID); exists {
			if err := s.Store.Update(doc); err != nil {
				failures[doc.ID] = err.Error()
				continue
			}
		} else if err := s.Store.Add(doc); err != nil {
			failures[doc.ID] = err.Error()
			continue
		}
		stored++
	}
	c.JSON(http.StatusOK, gin.H{"stored": stored, "failed": failures})
}
