package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffbot/internal/bot"
	"staffbot/internal/database"
	"staffbot/internal/knowledge"
	"staffbot/internal/monitoring"
)

// Server represents the staff chatbot HTTP API
type Server struct {
	Router    *gin.Engine
	Pipeline  *bot.Pipeline
	Store     *knowledge.Store
	BotConfig *bot.ConfigManager
	Chats     *database.ChatRepository
	Tasks     *database.TaskRepository
	Monitor   *monitoring.Monitor
	JWTSecret string
}

// NewServer creates the API server and wires all routes
func NewServer(pipeline *bot.Pipeline, store *knowledge.Store, botConfig *bot.ConfigManager, chats *database.ChatRepository, tasks *database.TaskRepository, jwtSecret string) *Server {
	s := &Server{
		Router:    gin.Default(),
		Pipeline:  pipeline,
		Store:     store,
		BotConfig: botConfig,
		Chats:     chats,
		Tasks:     tasks,
		Monitor:   monitoring.NewMonitor(),
		JWTSecret: jwtSecret,
	}
	s.Router.Use(CORSMiddleware())
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Liveness probes
	s.Router.GET("/api/test", s.HealthCheck)
	s.Router.GET("/api/health", s.HealthCheck)

	// Chat
	s.Router.POST("/api/chat", s.Chat)
	s.Router.POST("/api/chat/message", s.Chat)
	s.Router.GET("/api/suggestions/:role", s.Suggestions)
	s.Router.GET("/api/chat/suggestions/:role", s.Suggestions)
	s.Router.GET("/ws/chat", s.ChatSocket)

	// Authentication
	s.Router.POST("/api/auth/login", s.Login)

	admin := s.Router.Group("/api", s.AuthMiddleware())
	{
		// Knowledge management
		admin.GET("/knowledge/documents", s.ListDocuments)
		admin.GET("/knowledge/documents/:id", s.GetDocument)
		admin.POST("/knowledge/documents", s.CreateDocument)
		admin.PUT("/knowledge/documents/:id", s.UpdateDocument)
		admin.DELETE("/knowledge/documents/:id", s.DeleteDocument)
		admin.GET("/knowledge/search", s.SearchDocuments)
		admin.GET("/knowledge/stats", s.KnowledgeStats)
		admin.POST("/knowledge/bulk-upload", s.BulkUpload)
		admin.GET("/knowledge/export", s.ExportWorkbook)
		admin.POST("/knowledge/import", s.ImportWorkbook)

		// Bot configuration
		admin.GET("/config/bot", s.GetBotConfig)
		admin.POST("/config/bot", s.UpdateBotConfig)
		admin.POST("/config/bot/reset", s.ResetBotConfig)
		admin.POST("/config/bot/restore", s.RestoreBotConfig)
		admin.POST("/config/bot/test", s.TestBotConfig)

		// Chat history and runtime stats
		admin.GET("/chat/history", s.ChatHistory)
		admin.GET("/stats", s.RuntimeStats)

		// Task management
		admin.POST("/tasks", s.CreateTask)
		admin.GET("/tasks", s.ListTasks)
		admin.PUT("/tasks/:id/status", s.UpdateTaskStatus)
		admin.PATCH("/tasks/:id/status", s.UpdateTaskStatus)
		admin.DELETE("/tasks/:id", s.DeleteTask)
		admin.GET("/tasks/summary", s.TaskSummary)
		admin.GET("/tasks/summary/:role", s.TaskSummary)
	}
}

// CORSMiddleware applies permissive CORS headers and answers preflights
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
