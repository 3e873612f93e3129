package knowledge

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"staffbot/internal/models"
	"staffbot/pkg/logger"
)

// Repository is the persistence collaborator behind the store. Any failure
// from it is treated as an empty result, never a fatal error: the built-in
// seed set always exists.
type Repository interface {
	ListDocuments() ([]*models.KnowledgeDocument, error)
	SaveDocument(doc *models.KnowledgeDocument) error
	DeleteDocument(id string) error
}

// Store holds the knowledge documents. It is loaded once at startup and
// read-mostly afterwards; administrative mutations replace the document
// slice under a write lock so readers never observe a half-updated document.
type Store struct {
	mu   sync.RWMutex
	docs []*models.KnowledgeDocument
	repo Repository
}

// NewStore builds a store from the built-in seed set, merged with whatever
// the repository holds. Repository failures only log; the seeds remain.
func NewStore(repo Repository) *Store {
	s := &Store{repo: repo}
	s.docs = s.load()
	logger.Info("knowledge store loaded", zap.Int("documents", len(s.docs)))
	return s
}

// Reload rebuilds the document set from seeds plus the repository. Used by
// the administrative refresh path.
func (s *Store) Reload() {
	docs := s.load()
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
	logger.Info("knowledge store reloaded", zap.Int("documents", len(docs)))
}

func (s *Store) load() []*models.KnowledgeDocument {
	docs := SeedDocuments()
	index := make(map[string]int, len(docs))
	for i, doc := range docs {
		index[doc.ID] = i
	}

	if s.repo != nil {
		stored, err := s.repo.ListDocuments()
		if err != nil {
			logger.Warn("loading documents from repository failed, using seeds only", zap.Error(err))
			return docs
		}
		for _, doc := range stored {
			if i, ok := index[doc.ID]; ok {
				docs[i] = doc
				continue
			}
			index[doc.ID] = len(docs)
			docs = append(docs, doc)
		}
	}

	return docs
}

// Documents returns a snapshot of all documents.
func (s *Store) Documents() []*models.KnowledgeDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.KnowledgeDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// DocumentsByCategory returns the active documents of a category in load
// order.
func (s *Store) DocumentsByCategory(category models.Category) []*models.KnowledgeDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.KnowledgeDocument
	for _, doc := range s.docs {
		if doc.Category == category && doc.IsActive {
			out = append(out, doc)
		}
	}
	return out
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (*models.KnowledgeDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, true
		}
	}
	return nil, false
}

// Search does a best-effort substring scan over id, title and tags.
func (s *Store) Search(query string) []*models.KnowledgeDocument {
	lower := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.KnowledgeDocument
	for _, doc := range s.docs {
		if !doc.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(doc.ID), lower) ||
			strings.Contains(strings.ToLower(doc.Title), lower) {
			out = append(out, doc)
			continue
		}
		for _, tag := range doc.Tags {
			if strings.Contains(strings.ToLower(tag), lower) {
				out = append(out, doc)
				break
			}
		}
	}
	return out
}

// Add inserts a new document, persisting it best-effort. The in-memory set
// is updated even when the repository write fails.
func (s *Store) Add(doc *models.KnowledgeDocument) error {
	if err := validateDocument(doc); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.docs {
		if existing.ID == doc.ID {
			return fmt.Errorf("document %s already exists", doc.ID)
		}
	}

	s.persist(doc)

	docs := make([]*models.KnowledgeDocument, len(s.docs), len(s.docs)+1)
	copy(docs, s.docs)
	s.docs = append(docs, doc)
	return nil
}

// Update replaces the document with the same id.
func (s *Store) Update(doc *models.KnowledgeDocument) error {
	if err := validateDocument(doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.docs {
		if existing.ID == doc.ID {
			doc.Version = existing.Version + 1
			docs := make([]*models.KnowledgeDocument, len(s.docs))
			copy(docs, s.docs)
			docs[i] = doc
			s.docs = docs
			s.persist(doc)
			return nil
		}
	}
	return fmt.Errorf("document %s not found", doc.ID)
}

// Delete removes a document from the store and, best-effort, the repository.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.docs {
		if existing.ID == id {
			docs := make([]*models.KnowledgeDocument, 0, len(s.docs)-1)
			docs = append(docs, s.docs[:i]...)
			docs = append(docs, s.docs[i+1:]...)
			s.docs = docs
			if s.repo != nil {
				if err := s.repo.DeleteDocument(id); err != nil {
					logger.Warn("deleting document from repository failed", zap.String("id", id), zap.Error(err))
				}
			}
			return nil
		}
	}
	return fmt.Errorf("document %s not found", id)
}

func (s *Store) persist(doc *models.KnowledgeDocument) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveDocument(doc); err != nil {
		logger.Warn("persisting document failed", zap.String("id", doc.ID), zap.Error(err))
	}
}

// Stats summarizes the store for the admin stats endpoint.
type Stats struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	ByCategory map[string]int `json:"byCategory"`
}

// GetStats returns document counts by category.
func (s *Store) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{ByCategory: make(map[string]int)}
	for _, doc := range s.docs {
		stats.Total++
		if doc.IsActive {
			stats.Active++
		}
		stats.ByCategory[string(doc.Category)]++
	}
	return stats
}

func validateDocument(doc *models.KnowledgeDocument) error {
	if doc.ID == "" {
		return fmt.Errorf("document id is required")
	}
	if doc.Title == "" {
		return fmt.Errorf("document title is required")
	}
	if _, ok := models.ParseCategory(string(doc.Category)); !ok {
		return fmt.Errorf("unknown category: %s", doc.Category)
	}
	for role := range doc.Content {
		if _, ok := models.ParseRole(string(role)); !ok {
			return fmt.Errorf("unrecognized role in content: %s", role)
		}
	}
	return nil
}
