package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSubscribe   MessageType = "subscribe"
	MessageTypeUnsubscribe MessageType = "unsubscribe"
	MessageTypeNewMail     MessageType = "new_mail"
	MessageTypeError       MessageType = "error"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    MessageType `json:"type"`
	UserID  uint        `json:"user_id,omitempty"`
	Message interface{} `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// MailNotification is pushed to a user when a mailbox message lands for them
type MailNotification struct {
	ID         uint   `json:"id"`
	SenderID   uint   `json:"sender_id"`
	SenderName string `json:"sender_name,omitempty"`
	Subject    string `json:"subject,omitempty"`
	SentAt     string `json:"sent_at"`
}

// Hub maintains the set of active clients and routes mailbox notifications
// to the users they belong to.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Mailbox subscriptions: userID -> set of clients
	subscriptions map[uint]map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Subscribe to a user's mailbox
	subscribe chan *subscriptionRequest

	// Unsubscribe from a user's mailbox
	unsubscribeUser chan *subscriptionRequest

	// Broadcast to a user's connected clients
	broadcast chan *broadcastMessage

	// Mutex for thread-safe operations
	mu sync.RWMutex

	// Logger
	logger *slog.Logger
}

type subscriptionRequest struct {
	client *Client
	userID uint
}

type broadcastMessage struct {
	userID  uint
	message []byte
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:         make(map[*Client]bool),
		subscriptions:   make(map[uint]map[*Client]bool),
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		subscribe:       make(chan *subscriptionRequest),
		unsubscribeUser: make(chan *subscriptionRequest),
		broadcast:       make(chan *broadcastMessage, 256),
		logger:          logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("client registered")
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				// Remove from all subscriptions
				for userID, subscribers := range h.subscriptions {
					delete(subscribers, client)
					if len(subscribers) == 0 {
						delete(h.subscriptions, userID)
					}
				}
			}
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("client unregistered")
			}

		case req := <-h.subscribe:
			h.mu.Lock()
			if h.subscriptions[req.userID] == nil {
				h.subscriptions[req.userID] = make(map[*Client]bool)
			}
			h.subscriptions[req.userID][req.client] = true
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("client subscribed to mailbox", slog.Uint64("user_id", uint64(req.userID)))
			}

		case req := <-h.unsubscribeUser:
			h.mu.Lock()
			if subscribers, ok := h.subscriptions[req.userID]; ok {
				delete(subscribers, req.client)
				if len(subscribers) == 0 {
					delete(h.subscriptions, req.userID)
				}
			}
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("client unsubscribed from mailbox", slog.Uint64("user_id", uint64(req.userID)))
			}

		case msg := <-h.broadcast:
			h.mu.RLock()
			subscribers := h.subscriptions[msg.userID]
			for client := range subscribers {
				select {
				case client.send <- msg.message:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Subscribe subscribes a client to a user's mailbox
func (h *Hub) Subscribe(client *Client, userID uint) {
	h.subscribe <- &subscriptionRequest{client: client, userID: userID}
}

// Unsubscribe unsubscribes a client from a user's mailbox
func (h *Hub) Unsubscribe(client *Client, userID uint) {
	h.unsubscribeUser <- &subscriptionRequest{client: client, userID: userID}
}

// NotifyNewMail pushes a mailbox notification to the receiver's clients
func (h *Hub) NotifyNewMail(userID uint, payload *MailNotification) {
	msg := WSMessage{
		Type:    MessageTypeNewMail,
		UserID:  userID,
		Message: payload,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to marshal notification", slog.Any("error", err))
		}
		return
	}

	h.broadcast <- &broadcastMessage{
		userID:  userID,
		message: data,
	}
}
