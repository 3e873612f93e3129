package database

import (
	"github.com/jinzhu/gorm"

	"staffbot/internal/models"
)

// ChatRepository is the append-only log of chat exchanges.
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a repository backed by the given connection
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// LogExchange appends one chat turn
func (r *ChatRepository) LogExchange(ex *models.ChatExchange) error {
	return r.db.Create(ex).Error
}

// RecentExchanges returns the latest exchanges, newest first
func (r *ChatRepository) RecentExchanges(limit int) ([]models.ChatExchange, error) {
	if limit <= 0 {
		limit = 50
	}
	var exchanges []models.ChatExchange
	err := r.db.Order("created_at desc").Limit(limit).Find(&exchanges).Error
	return exchanges, err
}

// ExchangesByRole returns the latest exchanges for one staff role
func (r *ChatRepository) ExchangesByRole(role string, limit int) ([]models.ChatExchange, error) {
	if limit <= 0 {
		limit = 50
	}
	var exchanges []models.ChatExchange
	err := r.db.Where("user_role = ?", role).
		Order("created_at desc").Limit(limit).Find(&exchanges).Error
	return exchanges, err
}
