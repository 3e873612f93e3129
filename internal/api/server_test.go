package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbot/internal/api"
	"staffbot/internal/bot"
	"staffbot/internal/knowledge"
)

func newTestServer(t *testing.T, jwtSecret string) *api.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := knowledge.NewStore(nil)
	botConfig := bot.NewConfigManager(filepath.Join(t.TempDir(), "bot-instructions.json"))
	pipeline := bot.NewPipeline(store, botConfig, nil, nil)

	return api.NewServer(pipeline, store, botConfig, nil, nil, jwtSecret)
}

func doJSON(server *api.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	server.Router.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "POST", "/api/chat", gin.H{
		"message":  "dal makhani recipe bataiye",
		"userRole": "chef",
		"userName": "Ramesh",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["response"], "Namaste Ramesh")
	assert.Contains(t, response["response"], "Chef Level Recipe")
	assert.Equal(t, "chef", response["userRole"])
	assert.Equal(t, "Ramesh", response["userName"])
	assert.NotEmpty(t, response["timestamp"])
	assert.NotContains(t, response, "error")
}

func TestChatMessageAlias(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "POST", "/api/chat/message", gin.H{"message": "hygiene rules"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "trainee", response["userRole"])
	assert.Equal(t, "Ji", response["userName"])
}

func TestChatMissingMessage(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "POST", "/api/chat", gin.H{"userRole": "chef"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["error"])
}

func TestChatInvalidBody(t *testing.T) {
	server := newTestServer(t, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewReader([]byte("not json")))
	server.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t, "")

	for _, path := range []string{"/api/test", "/api/health"} {
		w := doJSON(server, "GET", path, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response["status"])
		assert.NotEmpty(t, response["endpoints"])
	}
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/chat", nil)
	server.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSuggestions(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "GET", "/api/suggestions/waiter", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "waiter", response["role"])
	assert.NotEmpty(t, response["suggestions"])

	// Unknown roles degrade to the trainee suggestions.
	w = doJSON(server, "GET", "/api/suggestions/astronaut", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "trainee", response["role"])
}

func TestKnowledgeCRUD(t *testing.T) {
	server := newTestServer(t, "")

	doc := gin.H{
		"id":       "paneer-tikka",
		"title":    "Paneer Tikka",
		"category": "recipe",
		"tags":     []string{"starter"},
		"content": gin.H{
			"trainee": gin.H{"basicInfo": "Marinated paneer grilled in tandoor"},
		},
	}

	w := doJSON(server, "POST", "/api/knowledge/documents", doc)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(server, "GET", "/api/knowledge/documents/paneer-tikka", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	doc["title"] = "Paneer Tikka - Revised"
	w = doJSON(server, "PUT", "/api/knowledge/documents/paneer-tikka", doc)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Paneer Tikka - Revised", updated["title"])
	assert.Equal(t, float64(2), updated["version"])

	w = doJSON(server, "GET", "/api/knowledge/search?q=paneer", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var search map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &search))
	assert.Equal(t, float64(1), search["count"])

	w = doJSON(server, "GET", "/api/knowledge/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(4), stats["total"])

	w = doJSON(server, "DELETE", "/api/knowledge/documents/paneer-tikka", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "GET", "/api/knowledge/documents/paneer-tikka", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKnowledgeRejectsBadDocuments(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "POST", "/api/knowledge/documents", gin.H{
		"id":       "bad-doc",
		"title":    "Bad",
		"category": "gossip",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(server, "POST", "/api/knowledge/documents", gin.H{
		"id":       "bad-roles",
		"title":    "Bad Roles",
		"category": "recipe",
		"content":  gin.H{"astronaut": gin.H{}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkUploadPartialFailure(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "POST", "/api/knowledge/bulk-upload", []gin.H{
		{"id": "good-doc", "title": "Good", "category": "sop"},
		{"id": "bad-doc", "title": "Bad", "category": "gossip"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["stored"])
	assert.Contains(t, response["failed"], "bad-doc")
}

func TestBotConfigLifecycle(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "GET", "/api/config/bot", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))

	// Invalid update is rejected with the list of problems.
	w = doJSON(server, "POST", "/api/config/bot", gin.H{"identity": gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var rejected map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rejected))
	assert.NotEmpty(t, rejected["problems"])

	// A valid update goes through and reset brings the defaults back.
	identity, _ := cfg["identity"].(map[string]interface{})
	identity["name"] = "Renamed Bot"
	w = doJSON(server, "POST", "/api/config/bot", cfg)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "POST", "/api/config/bot/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "POST", "/api/config/bot/restore", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBotConfigTest(t *testing.T) {
	server := newTestServer(t, "")

	w := doJSON(server, "POST", "/api/config/bot/test", gin.H{"userRole": "waiter"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "template", response["source"])
	assert.NotEmpty(t, response["response"])
}

func TestAdminRoutesRequireTokenWhenSecretSet(t *testing.T) {
	server := newTestServer(t, "test-secret")

	w := doJSON(server, "GET", "/api/knowledge/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/knowledge/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	server.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret123")
	server := newTestServer(t, "test-secret")

	w := doJSON(server, "POST", "/api/auth/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(server, "POST", "/api/auth/login", gin.H{"username": "admin", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	var login map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	r := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/knowledge/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	server.Router.ServeHTTP(r, req)
	assert.Equal(t, http.StatusOK, r.Code)
}

func TestRuntimeStatsCountsChats(t *testing.T) {
	server := newTestServer(t, "")

	doJSON(server, "POST", "/api/chat", gin.H{"message": "dal makhani recipe"})
	doJSON(server, "POST", "/api/chat", gin.H{"message": "hygiene rules"})

	w := doJSON(server, "GET", "/api/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(2), stats["chat_requests"])
	assert.Contains(t, stats, "uptime_seconds")
}

func TestChatNeverReturnsServerError(t *testing.T) {
	server := newTestServer(t, "")

	// A query matching nothing still yields a friendly role menu.
	w := doJSON(server, "POST", "/api/chat", gin.H{"message": "kuch bhi", "userRole": "supervisor"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["response"], "Namaste")
}
