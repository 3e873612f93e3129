package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffbot/internal/models"
)

// CreateTask records a new staff assignment
func (s *Server) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if task.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if task.Role != "" {
		if _, ok := models.ParseRole(task.Role); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
	}
	if err := s.Tasks.CreateTask(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task add ho gaya Ji!", "task": task})
}

// ListTasks returns tasks filtered by optional role and status query params
func (s *Server) ListTasks(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidTaskStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	tasks, err := s.Tasks.ListTasks(c.Query("role"), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// UpdateTaskStatus moves a task to a new status
func (s *Server) UpdateTaskStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	task, err := s.Tasks.UpdateTaskStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
func (s *Server) DeleteTask(c *gin.Context) {
	if err := s.Tasks.DeleteTask(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// TaskSummary aggregates task counts per role, optionally narrowed to one role
func (s *Server) TaskSummary(c *gin.Context) {
	summaries, err := s.Tasks.Summarize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if role := c.Param("role"); role != "" {
		parsed, ok := models.ParseRole(role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
		for _, summary := range summaries {
			if summary.Role == string(parsed) {
				c.JSON(http.StatusOK, gin.H{"summary": []models.TaskSummary{summary}})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"summary": []models.TaskSummary{{Role: string(parsed)}}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summaries})
}
