package api_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialChatSocket(t *testing.T) *websocket.Conn {
	t.Helper()

	server := newTestServer(t, "")
	ts := httptest.NewServer(server.Router)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestChatSocketRoundTrip(t *testing.T) {
	conn := dialChatSocket(t)

	require.NoError(t, conn.WriteJSON(map[string]string{
		"message":  "dal makhani recipe bataiye",
		"userRole": "chef",
		"userName": "Ramesh",
	}))

	var reply map[string]interface{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply["response"], "Namaste Ramesh")
	assert.Contains(t, reply["response"], "Chef Level Recipe")
	assert.Equal(t, "chef", reply["userRole"])
	assert.Equal(t, "Ramesh", reply["userName"])
	assert.NotEmpty(t, reply["timestamp"])
}

func TestChatSocketRejectsEmptyMessage(t *testing.T) {
	conn := dialChatSocket(t)

	require.NoError(t, conn.WriteJSON(map[string]string{"message": ""}))

	var reply map[string]string
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "Message is required", reply["error"])
}

func TestChatSocketRejectsMalformedPayload(t *testing.T) {
	conn := dialChatSocket(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	var reply map[string]string
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "Invalid message format", reply["error"])
}
