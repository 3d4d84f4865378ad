package ws

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T, hub *Hub) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	srv := NewServer(ln.Addr().String(), hub)
	go srv.Serve(ln)
	return ln.Addr().String()
}

func dial(t *testing.T, addr string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendJSON(t *testing.T, conn *websocket.Conn, msg InboundMessage) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func waitForGroup(t *testing.T, hub *Hub, matchID uint, size int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GroupSize(matchID) != size {
		if time.Now().After(deadline) {
			t.Fatalf("group %d never reached %d members", matchID, size)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServerChatRelay(t *testing.T) {
	hub := NewHub(nil)
	addr := startTestServer(t, hub)

	c1 := dial(t, addr)
	c2 := dial(t, addr)
	sendJSON(t, c1, InboundMessage{Type: MsgAuth, UserID: 1, MatchID: 42})
	sendJSON(t, c2, InboundMessage{Type: MsgAuth, UserID: 2, MatchID: 42})
	waitForGroup(t, hub, 42, 2)

	sendJSON(t, c1, InboundMessage{Type: MsgChat, MatchID: 42, Message: "good luck"})

	// Chat goes to the whole group, sender included.
	for _, conn := range []*websocket.Conn{c1, c2} {
		msg := readJSON(t, conn)
		assert.Equal(t, MsgChat, msg["type"])
		assert.Equal(t, "good luck", msg["message"])
		assert.Equal(t, float64(1), msg["user_id"])
	}
}

func TestServerAnswerSubmittedExcludesSender(t *testing.T) {
	hub := NewHub(nil)
	addr := startTestServer(t, hub)

	c1 := dial(t, addr)
	c2 := dial(t, addr)
	sendJSON(t, c1, InboundMessage{Type: MsgAuth, UserID: 1, MatchID: 7})
	sendJSON(t, c2, InboundMessage{Type: MsgAuth, UserID: 2, MatchID: 7})
	waitForGroup(t, hub, 7, 2)

	sendJSON(t, c1, InboundMessage{Type: MsgAnswerSubmitted, UserID: 1, MatchID: 7})

	msg := readJSON(t, c2)
	assert.Equal(t, MsgAnswerSubmitted, msg["type"])
	assert.Equal(t, float64(1), msg["user_id"])

	require.NoError(t, c1.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	var echo map[string]interface{}
	assert.Error(t, c1.ReadJSON(&echo), "sender must not receive its own notification")
}

func TestServerDisconnectBroadcastsPlayerLeft(t *testing.T) {
	hub := NewHub(func(userID uint) string { return fmt.Sprintf("player%d", userID) })
	addr := startTestServer(t, hub)

	c1 := dial(t, addr)
	c2 := dial(t, addr)
	sendJSON(t, c1, InboundMessage{Type: MsgAuth, UserID: 1, MatchID: 9})
	sendJSON(t, c2, InboundMessage{Type: MsgAuth, UserID: 2, MatchID: 9})
	waitForGroup(t, hub, 9, 2)

	c1.Close()

	msg := readJSON(t, c2)
	assert.Equal(t, MsgPlayerLeft, msg["type"])
	assert.Equal(t, float64(1), msg["user_id"])
	assert.Equal(t, "player1", msg["username"])
	waitForGroup(t, hub, 9, 1)
}

func TestServerIgnoresChatBeforeAuth(t *testing.T) {
	hub := NewHub(nil)
	addr := startTestServer(t, hub)

	member := dial(t, addr)
	sendJSON(t, member, InboundMessage{Type: MsgAuth, UserID: 2, MatchID: 5})
	waitForGroup(t, hub, 5, 1)

	stranger := dial(t, addr)
	sendJSON(t, stranger, InboundMessage{Type: MsgChat, MatchID: 5, Message: "anonymous"})

	require.NoError(t, member.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	var msg map[string]interface{}
	assert.Error(t, member.ReadJSON(&msg), "unauthenticated chat must be dropped")
}

func TestServerIgnoresMalformedPayload(t *testing.T) {
	hub := NewHub(nil)
	addr := startTestServer(t, hub)

	conn := dial(t, addr)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	// Connection survives the bad payload and still accepts auth.
	sendJSON(t, conn, InboundMessage{Type: MsgAuth, UserID: 1, MatchID: 3})
	waitForGroup(t, hub, 3, 1)
}
