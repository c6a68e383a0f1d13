// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/livepoll/livepoll/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size; clients only ever send join frames.
	maxMessageSize = 512

	// Outbound buffer per client. When it fills, updates are dropped
	// rather than queued without bound.
	sendBuffer = 16
)

// Client is one live-update connection. Inbound joinPoll frames register
// it with the hub; outbound pollUpdate frames flow through the buffered
// send channel so the vote path never writes to the socket directly.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan models.ServerMessage
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan models.ServerMessage, sendBuffer),
	}
}

// Serve runs the connection until it closes, then cleans up all of the
// client's hub subscriptions.
func (c *Client) Serve() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		// Leave first: once it returns, no Publish holds a reference
		// to the send channel and closing it is safe.
		c.hub.Leave(c.send)
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg models.ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type == models.MessageJoinPoll && msg.PollID != "" {
			c.hub.Join(msg.PollID, c.send)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
