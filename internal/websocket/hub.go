// Package statusws streams assessment status transitions to waiting
// browsers, so the status page hears about a review without reloading.
package statusws

import (
	"encoding/json"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	websocket "github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type Hub struct {
	// subscribers are keyed by assessment public id.
	subscribers map[string]map[*Client]struct{}
	register    chan *Client
	unregister  chan *Client
	broadcast   chan *StatusEvent
}

type Client struct {
	hub          *Hub
	conn         *websocket.Conn
	assessmentID string
	send         chan []byte
}

type StatusEvent struct {
	Type         string `json:"type"`
	AssessmentID string `json:"assessment_id"`
	Status       string `json:"status"`
	Label        string `json:"label"`
	Color        string `json:"color"`
	Timestamp    string `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Client]struct{}),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *StatusEvent, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, assessmentID string) *Client {
	return &Client{
		hub:          hub,
		conn:         conn,
		assessmentID: assessmentID,
		send:         make(chan []byte, 16),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.subscribers[client.assessmentID]
			if !ok {
				set = make(map[*Client]struct{})
				h.subscribers[client.assessmentID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.subscribers[client.assessmentID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.subscribers, client.assessmentID)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastStatus fans a transition out to every subscriber of the
// assessment. Safe to call from any goroutine.
func (h *Hub) BroadcastStatus(assessmentID, status string) {
	h.broadcast <- &StatusEvent{
		Type:         "status",
		AssessmentID: assessmentID,
		Status:       status,
		Label:        utils.GetStatusLabel("assessment", status),
		Color:        utils.GetStatusColor("assessment", status),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}

// BroadcastReady tells subscribers the review results can be fetched.
// Sent once per watch, after the grace period.
func (h *Hub) BroadcastReady(assessmentID, status string) {
	h.broadcast <- &StatusEvent{
		Type:         "results_ready",
		AssessmentID: assessmentID,
		Status:       status,
		Label:        utils.GetStatusLabel("assessment", status),
		Color:        utils.GetStatusColor("assessment", status),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *Hub) deliver(event *StatusEvent) {
	set, ok := h.subscribers[event.AssessmentID]
	if !ok {
		return
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("status hub encode event", zap.Error(err))
		return
	}

	for client := range set {
		select {
		case client.send <- encoded:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.subscribers, event.AssessmentID)
	}
}

// ReadPump drains (and ignores) inbound frames until the peer goes
// away, then unsubscribes. The stream is one-directional.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
