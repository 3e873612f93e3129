package models

import (
	"github.com/jinzhu/gorm"
)

// ChatExchange is an append-only log entry for a single chat turn. It is
// written best-effort and never read back by the matching path.
type ChatExchange struct {
	gorm.Model
	ExchangeID     string `gorm:"column:exchange_id;unique_index"`
	UserName       string
	UserRole       string
	Message        string `gorm:"type:text"`
	Response       string `gorm:"type:text"`
	Source         string // "llm" or "template"
	ResponseTimeMs int64
}

// TableName sets the table name for ChatExchange
func (ChatExchange) TableName() string {
	return "chat_exchanges"
}
