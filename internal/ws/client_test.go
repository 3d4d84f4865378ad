package ws

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelIDAssigned(t *testing.T) {
	p1 := newTestPeer(t)
	p2 := newTestPeer(t)

	assert.NotEmpty(t, p1.client.ID)
	assert.NotEmpty(t, p2.client.ID)
	assert.NotEqual(t, p1.client.ID, p2.client.ID)
}

func TestChannelIDInRegistrationLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	hub := NewHub(nil)
	p := newTestPeer(t)
	hub.Register(p.client, 1, 42)

	assert.Contains(t, buf.String(), p.client.ID)
}
