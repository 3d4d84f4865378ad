package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// UsernameFunc resolves a display name for player_left notifications. A
// failed lookup returns "" so the notification still goes out.
type UsernameFunc func(userID uint) string

// Hub tracks every live client and its match-group membership. Per-connection
// read loops touch the hub concurrently, so all map access happens under mu.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	matches map[uint]map[*Client]bool

	username UsernameFunc
}

func NewHub(username UsernameFunc) *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		matches:  make(map[uint]map[*Client]bool),
		username: username,
	}
}

// Register records the client's identity and, when a match id is given, its
// match-group membership. A repeated auth message is a no-op: identity is
// set exactly once and a client never appears twice in a group.
func (h *Hub) Register(c *Client, userID, matchID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !c.authed {
		c.userID = userID
		c.matchID = matchID
		c.authed = true
	}
	h.clients[c] = true

	if c.matchID == 0 {
		return
	}
	group := h.matches[c.matchID]
	if group == nil {
		group = make(map[*Client]bool)
		h.matches[c.matchID] = group
	}
	if !group[c] {
		group[c] = true
		log.Printf("ws: channel %s user %d joined match group %d (members: %d)", c.ID, c.userID, c.matchID, len(group))
	}
}

// Broadcast marshals event once and delivers it to every client in the match
// group except exclude. Individual write failures are swallowed; a dead peer
// gets cleaned up by its own read loop, not here.
func (h *Hub) Broadcast(matchID uint, event interface{}, exclude *Client) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.RLock()
	group := h.matches[matchID]
	receivers := make([]*Client, 0, len(group))
	for c := range group {
		if c != exclude {
			receivers = append(receivers, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range receivers {
		if err := c.send(data); err != nil {
			log.Printf("ws: write on channel %s (user %d) failed: %v", c.ID, c.UserID(), err)
		}
	}
}

// Unregister removes the client from the registry and its match group, then
// tells the remaining group members the player left.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)

	notify := false
	if c.authed && c.matchID != 0 {
		if group, ok := h.matches[c.matchID]; ok && group[c] {
			delete(group, c)
			if len(group) == 0 {
				delete(h.matches, c.matchID)
			}
			notify = true
		}
	}
	h.mu.Unlock()

	if !notify {
		return
	}

	name := ""
	if h.username != nil {
		name = h.username(c.userID)
	}
	h.Broadcast(c.matchID, PlayerLeftEvent{
		Type:      MsgPlayerLeft,
		UserID:    c.userID,
		Username:  name,
		Timestamp: time.Now().Unix(),
	}, nil)
	log.Printf("ws: channel %s user %d left match group %d", c.ID, c.userID, c.matchID)
}

// GroupSize reports how many clients are attached to a match group.
func (h *Hub) GroupSize(matchID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.matches[matchID])
}
