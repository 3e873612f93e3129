package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// TaskStatus tracks a staff task through the Task → Status → Reminder flow.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a staff assignment recorded by the bot or a supervisor.
type Task struct {
	gorm.Model
	TaskID      string `gorm:"column:task_id;unique_index"`
	Title       string
	Description string `gorm:"type:text"`
	Role        string
	Assignee    string
	Status      string
	Reminder    string
	DueDate     *time.Time
	CreatedBy   string
}

// TableName sets the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TaskSummary aggregates task counts for a role.
type TaskSummary struct {
	Role       string `json:"role"`
	Total      int    `json:"total"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"inProgress"`
	Completed  int    `json:"completed"`
}
