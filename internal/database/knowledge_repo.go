package database

import (
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"staffbot/internal/models"
	"staffbot/pkg/logger"
)

// KnowledgeRepository persists knowledge documents in SQLite.
type KnowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a repository backed by the given connection
func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// ListDocuments returns every stored document. Rows whose content no longer
// decodes are skipped rather than failing the whole load.
func (r *KnowledgeRepository) ListDocuments() ([]*models.KnowledgeDocument, error) {
	var rows []models.Document
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]*models.KnowledgeDocument, 0, len(rows))
	for i := range rows {
		doc, err := rows[i].ToKnowledgeDocument()
		if err != nil {
			logger.Warn("skipping undecodable document row",
				zap.String("doc_id", rows[i].DocID), zap.Error(err))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// SaveDocument inserts or updates a document keyed by its document ID
func (r *KnowledgeRepository) SaveDocument(doc *models.KnowledgeDocument) error {
	row, err := models.FromKnowledgeDocument(doc)
	if err != nil {
		return err
	}
	var existing models.Document
	err = r.db.Where("doc_id = ?", doc.ID).First(&existing).Error
	if gorm.IsRecordNotFoundError(err) {
		return r.db.Create(row).Error
	}
	if err != nil {
		return err
	}
	row.ID = existing.ID
	return r.db.Save(row).Error
}

// DeleteDocument removes a document by its document ID
func (r *KnowledgeRepository) DeleteDocument(id string) error {
	return r.db.Where("doc_id = ?", id).Delete(&models.Document{}).Error
}
