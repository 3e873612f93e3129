package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffbot/internal/bot"
	"staffbot/internal/knowledge"
	"staffbot/internal/models"
	"staffbot/pkg/logger"
)

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message           string `json:"message"`
	UserRole          string `json:"userRole"`
	UserName          string `json:"userName"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// Chat handles a staff chat message. Content-generation failures never
// surface as 5xx: the client always gets a usable Hinglish reply, with
// error "fallback" marking the degraded case.
func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	name := req.UserName
	if name == "" {
		name = knowledge.DefaultUserName
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("chat handler panicked", zap.Any("panic", r))
			c.JSON(http.StatusOK, gin.H{
				"response":  knowledge.TechnicalFallback(name, req.PreferredLanguage),
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"userRole":  req.UserRole,
				"userName":  name,
				"error":     "fallback",
			})
		}
	}()

	s.Monitor.IncrementMetric("chat_requests")
	result := s.Pipeline.Respond(c.Request.Context(), bot.ChatRequest{
		Message:           req.Message,
		UserRole:          req.UserRole,
		UserName:          req.UserName,
		PreferredLanguage: req.PreferredLanguage,
	})

	c.JSON(http.StatusOK, gin.H{
		"response":  result.Response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"userRole":  string(result.Role),
		"userName":  result.UserName,
	})
}

var roleSuggestions = map[models.Role][]string{
	models.RoleChef: {
		"Dal Makhani ki recipe bataiye",
		"Kitchen hygiene standards kya hain?",
		"Aaj ki training kya hai?",
	},
	models.RoleWaiter: {
		"Dal Makhani guest ko kaise describe karu?",
		"Table service standards bataiye",
		"Upselling kaise karte hain?",
	},
	models.RoleDeliveryBoy: {
		"Delivery hygiene protocol kya hai?",
		"Packaging check kaise karna hai?",
		"Customer se kaise baat karni hai?",
	},
	models.RoleSupervisor: {
		"Team ki training status dikhaiye",
		"Hygiene audit checklist bataiye",
		"Staff assignments kya hain?",
	},
	models.RoleTrainee: {
		"Dal Makhani ke baare mein bataiye",
		"Safai ke basic rules kya hain?",
		"Training kahan se shuru karu?",
	},
}

// Suggestions returns starter questions for a staff role
func (s *Server) Suggestions(c *gin.Context) {
	role, ok := models.ParseRole(c.Param("role"))
	if !ok {
		role = models.DefaultRole
	}
	suggestions, ok := roleSuggestions[role]
	if !ok {
		suggestions = roleSuggestions[models.DefaultRole]
	}
	c.JSON(http.StatusOK, gin.H{
		"role":        string(role),
		"suggestions": suggestions,
	})
}

// HealthCheck is the liveness probe
func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Staff training bot API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    "healthy",
		"endpoints": []string{
			"POST /api/chat",
			"POST /api/chat/message",
			"GET /api/suggestions/:role",
			"GET /api/test",
			"GET /ws/chat",
		},
	})
}

// RuntimeStats returns the process-local counters and uptime
func (s *Server) RuntimeStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.Monitor.GetMetrics())
}

// ChatHistory returns recent exchanges, optionally filtered by role
func (s *Server) ChatHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	role := c.Query("role")

	var (
		exchanges []models.ChatExchange
		err       error
	)
	if role != "" {
		exchanges, err = s.Chats.ExchangesByRole(role, limit)
	} else {
		exchanges, err = s.Chats.RecentExchanges(limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exchanges": exchanges, "count": len(exchanges)})
}
