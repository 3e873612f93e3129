package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffbot/internal/bot"
	"staffbot/internal/models"
)

// GetBotConfig returns the active bot instructions
func (s *Server) GetBotConfig(c *gin.Context) {
	c.JSON(http.StatusOK, s.BotConfig.Current())
}

// UpdateBotConfig validates and persists new bot instructions. The previous
// version is backed up before the write so Restore can undo a bad change.
func (s *Server) UpdateBotConfig(c *gin.Context) {
	var cfg models.BotConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if problems := s.BotConfig.Update(&cfg); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Configuration rejected", "problems": problems})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration updated successfully", "config": &cfg})
}

// ResetBotConfig restores the built-in default instructions
func (s *Server) ResetBotConfig(c *gin.Context) {
	cfg, problems := s.BotConfig.Reset()
	if len(problems) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset failed", "problems": problems})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration reset to defaults", "config": cfg})
}

// RestoreBotConfig reloads the last backed-up instructions
func (s *Server) RestoreBotConfig(c *gin.Context) {
	cfg, err := s.BotConfig.Restore()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration restored from backup", "config": cfg})
}

// TestBotConfig runs a sample message through the pipeline so admins can
// preview how the bot answers under the current instructions.
func (s *Server) TestBotConfig(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Message == "" {
		req.Message = "Dal Makhani ki recipe bataiye"
	}

	result := s.Pipeline.Respond(c.Request.Context(), bot.ChatRequest{
		Message:  req.Message,
		UserRole: req.UserRole,
		UserName: req.UserName,
	})
	c.JSON(http.StatusOK, gin.H{
		"response": result.Response,
		"source":   result.Source,
		"userRole": string(result.Role),
	})
}
