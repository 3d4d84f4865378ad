package ws

import (
	"bufio"
	"encoding/json"
	"log"
	"net"
	"time"
)

// Server owns the TCP listener for the match channel protocol. It runs on
// its own port, separate from the REST API.
type Server struct {
	addr string
	hub  *Hub
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{addr: addr, hub: hub}
}

// ListenAndServe accepts connections until the listener fails.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Printf("ws: listening on %s", s.addr)
	return s.Serve(ln)
}

// Serve runs the accept loop. Each connection gets its own goroutine with a
// blocking read loop for the lifetime of the channel.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	if err := upgrade(reader, conn); err != nil {
		// Handshake failure: drop without a response.
		return
	}

	client := newClient(conn)
	log.Printf("ws: channel %s connected from %s", client.ID, conn.RemoteAddr())
	defer s.hub.Unregister(client)

	for {
		payload, err := ReadFrame(reader)
		if err != nil {
			// Disconnect or corrupt frame; either way the channel is done.
			return
		}
		s.handleMessage(client, payload)
	}
}

func (s *Server) handleMessage(c *Client, payload []byte) {
	var msg InboundMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return
	}

	switch msg.Type {
	case MsgAuth:
		s.hub.Register(c, msg.UserID, msg.MatchID)

	case MsgAnswerSubmitted:
		s.hub.Broadcast(msg.MatchID, AnswerSubmittedEvent{
			Type:      MsgAnswerSubmitted,
			UserID:    msg.UserID,
			Timestamp: time.Now().Unix(),
		}, c)

	case MsgChat:
		if !c.authed {
			return
		}
		s.hub.Broadcast(msg.MatchID, ChatEvent{
			Type:      MsgChat,
			UserID:    c.userID,
			Message:   msg.Message,
			Timestamp: time.Now().Unix(),
		}, nil)
	}
}
