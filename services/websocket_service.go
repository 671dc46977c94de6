package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"scrawl-notes/scrawl/broker"
	"scrawl-notes/scrawl/utils/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WebSocketServiceInterface interface {
	Start()
	Stop()
	HandleConnection(c *gin.Context, claims *token.JWTClaims)
}

// Client represents a connected WebSocket client
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
}

// ServerMessage is what the feed pushes to clients
type ServerMessage struct {
	Type    string      `json:"type"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// WebSocketService forwards broker events to the owning user's open
// connections. Delivery is owner-only: an event is routed by the user_id the
// dispatcher stamped on it.
type WebSocketService struct {
	clients      map[uuid.UUID]map[*Client]bool
	register     chan *Client
	unregister   chan *Client
	clientsMutex sync.RWMutex

	upgrader websocket.Upgrader
	consumer *broker.Consumer

	isRunning bool
	stopChan  chan struct{}
}

func NewWebSocketService(consumer *broker.Consumer) *WebSocketService {
	return &WebSocketService{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		consumer: consumer,
		stopChan: make(chan struct{}),
	}
}

func (ws *WebSocketService) Start() {
	if ws.isRunning {
		return
	}
	ws.isRunning = true
	go ws.run()
}

func (ws *WebSocketService) Stop() {
	if !ws.isRunning {
		return
	}
	ws.isRunning = false
	close(ws.stopChan)
}

func (ws *WebSocketService) run() {
	var brokerMessages <-chan *natsMsg
	if ws.consumer != nil {
		brokerMessages = wrapConsumer(ws.consumer)
	}

	for {
		select {
		case client := <-ws.register:
			ws.addClient(client)
		case client := <-ws.unregister:
			ws.removeClient(client)
		case msg, ok := <-brokerMessages:
			if !ok {
				brokerMessages = nil
				continue
			}
			ws.routeEvent(msg.Subject, msg.Data)
		case <-ws.stopChan:
			return
		}
	}
}

// natsMsg decouples the hub loop from the broker type for testing.
type natsMsg struct {
	Subject string
	Data    []byte
}

func wrapConsumer(consumer *broker.Consumer) <-chan *natsMsg {
	out := make(chan *natsMsg)
	go func() {
		for msg := range consumer.Messages() {
			out <- &natsMsg{Subject: msg.Subject, Data: msg.Data}
		}
		close(out)
	}()
	return out
}

func (ws *WebSocketService) addClient(client *Client) {
	ws.clientsMutex.Lock()
	defer ws.clientsMutex.Unlock()
	if ws.clients[client.UserID] == nil {
		ws.clients[client.UserID] = make(map[*Client]bool)
	}
	ws.clients[client.UserID][client] = true
}

func (ws *WebSocketService) removeClient(client *Client) {
	ws.clientsMutex.Lock()
	defer ws.clientsMutex.Unlock()
	if conns, ok := ws.clients[client.UserID]; ok {
		if conns[client] {
			delete(conns, client)
			close(client.Send)
			if len(conns) == 0 {
				delete(ws.clients, client.UserID)
			}
		}
	}
}

// routeEvent delivers a broker event to the owning user's connections only.
func (ws *WebSocketService) routeEvent(subject string, data []byte) {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Warning: Could not unmarshal broker message: %v", err)
		return
	}

	userIDStr, _ := payload["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return
	}

	message, err := json.Marshal(ServerMessage{
		Type:    "event",
		Event:   subject,
		Payload: payload,
	})
	if err != nil {
		return
	}

	ws.clientsMutex.RLock()
	defer ws.clientsMutex.RUnlock()
	for client := range ws.clients[userID] {
		select {
		case client.Send <- message:
		default:
			// Slow consumer, drop the message rather than block the hub
		}
	}
}

// HandleConnection upgrades an authenticated request and services it until
// the peer goes away.
func (ws *WebSocketService) HandleConnection(c *gin.Context, claims *token.JWTClaims) {
	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket connection: %v", err)
		return
	}

	client := &Client{
		UserID: claims.UserID,
		Conn:   conn,
		Send:   make(chan []byte, 64),
	}
	ws.register <- client

	go client.writePump()
	go client.readPump(ws)
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; the feed is one-way. Reading is still
// required to notice the close handshake.
func (c *Client) readPump(ws *WebSocketService) {
	defer func() {
		ws.unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

var WebSocketServiceInstance WebSocketServiceInterface
