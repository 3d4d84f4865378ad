package ws

import (
	"net"
	"sync"

	"github.com/google/uuid"
)

// Client is one live channel to a connected player. Identity and match
// membership are set once by the first auth message and never reassigned.
type Client struct {
	// ID names the channel in logs, which matters before auth when there
	// is no user id to report yet.
	ID   string
	conn net.Conn

	// writeMu serializes frames so concurrent broadcasts cannot interleave
	// partial writes on the socket.
	writeMu sync.Mutex

	userID  uint
	matchID uint
	authed  bool
}

func newClient(conn net.Conn) *Client {
	return &Client{ID: uuid.NewString(), conn: conn}
}

func (c *Client) send(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return WriteFrame(c.conn, payload)
}

func (c *Client) UserID() uint  { return c.userID }
func (c *Client) MatchID() uint { return c.matchID }
