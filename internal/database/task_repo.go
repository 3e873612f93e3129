package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"staffbot/internal/models"
)

// TaskRepository manages staff tasks.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a repository backed by the given connection
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask stores a new task, assigning an ID and default status
func (r *TaskRepository) CreateTask(task *models.Task) error {
	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = string(models.TaskStatusPending)
	}
	if !models.ValidTaskStatus(task.Status) {
		return fmt.Errorf("invalid task status: %s", task.Status)
	}
	return r.db.Create(task).Error
}

// GetTask fetches one task by its task ID
func (r *TaskRepository) GetTask(taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns tasks, optionally filtered by role and status
func (r *TaskRepository) ListTasks(role, status string) ([]models.Task, error) {
	query := r.db
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var tasks []models.Task
	err := query.Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// UpdateTaskStatus moves a task through the pending → in-progress → completed flow
func (r *TaskRepository) UpdateTaskStatus(taskID, status string) (*models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}
	task, err := r.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := r.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task by its task ID
func (r *TaskRepository) DeleteTask(taskID string) error {
	return r.db.Where("task_id = ?", taskID).Delete(&models.Task{}).Error
}

// Summarize aggregates task counts per role
func (r *TaskRepository) Summarize() ([]models.TaskSummary, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	byRole := map[string]*models.TaskSummary{}
	var order []string
	for i := range tasks {
		summary, ok := byRole[tasks[i].Role]
		if !ok {
			summary = &models.TaskSummary{Role: tasks[i].Role}
			byRole[tasks[i].Role] = summary
			order = append(order, tasks[i].Role)
		}
		summary.Total++
		switch models.TaskStatus(tasks[i].Status) {
		case models.TaskStatusPending:
			summary.Pending++
		case models.TaskStatusInProgress:
			summary.InProgress++
		case models.TaskStatusCompleted:
			summary.Completed++
		}
	}
	summaries := make([]models.TaskSummary, 0, len(order))
	for _, role := range order {
		summaries = append(summaries, *byRole[role])
	}
	return summaries, nil
}
