package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// Client represents a WebSocket client connection
type Client struct {
	UserID    string
	SessionID string
	Conn      *websocket.Conn
	Hub       *Hub
	Send      chan []byte
}

// NewClient creates a new WebSocket client
func NewClient(userID, sessionID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		UserID:    userID,
		SessionID: sessionID,
		Conn:      conn,
		Hub:       hub,
		Send:      make(chan []byte, 256),
	}
}

// ReadPump handles incoming messages from the client
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Disconnect(c.SessionID)
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var incoming IncomingEvent
		if err := json.Unmarshal(message, &incoming); err != nil {
			log.Printf("Failed to parse message: %v", err)
			continue
		}

		c.handleIncomingEvent(incoming)
	}
}

// WritePump handles outgoing messages to the client
func (c *Client) WritePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Write error: %v", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleIncomingEvent routes client-originated events. Events with a
// missing target are dropped without notifying the sender.
func (c *Client) handleIncomingEvent(event IncomingEvent) {
	switch event.Type {
	case EventTyping:
		c.Hub.SetTyping(c.UserID, event.Payload["targetId"])
	case EventStopTyping:
		c.Hub.ClearTyping(c.UserID, event.Payload["targetId"])
	default:
		log.Printf("Unknown event type: %s", event.Type)
	}
}
