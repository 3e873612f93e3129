package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"staffbot/internal/bot"
	"staffbot/pkg/logger"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSConnection maintains the WebSocket connection with one chat client
type WSConnection struct {
	conn     *websocket.Conn
	send     chan []byte
	mu       sync.Mutex
	pipeline *bot.Pipeline
}

// ChatSocket upgrades the request and serves a streaming chat session
func (s *Server) ChatSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	wsConn := &WSConnection{
		conn:     conn,
		send:     make(chan []byte, 256),
		pipeline: s.Pipeline,
	}

	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump pumps messages from the WebSocket connection to the pipeline
func (c *WSConnection) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}
		c.handleMessage(message)
	}
}

// writePump pumps responses from the pipeline to the WebSocket connection
func (c *WSConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes one inbound chat turn
func (c *WSConnection) handleMessage(message []byte) {
	var req ChatRequest
	if err := json.Unmarshal(message, &req); err != nil {
		c.sendError("Invalid message format")
		return
	}
	if req.Message == "" {
		c.sendError("Message is required")
		return
	}

	go func() {
		result := c.pipeline.Respond(context.Background(), bot.ChatRequest{
			Message:           req.Message,
			UserRole:          req.UserRole,
			UserName:          req.UserName,
			PreferredLanguage: req.PreferredLanguage,
		})
		c.sendJSON(gin.H{
			"response":  result.Response,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"userRole":  string(result.Role),
			"userName":  result.UserName,
		})
	}()
}

func (c *WSConnection) sendJSON(payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("marshaling websocket payload failed", zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		logger.Warn("websocket buffer full, dropping message")
	}
}

func (c *WSConnection) sendError(message string) {
	c.sendJSON(map[string]string{"error": message})
}
