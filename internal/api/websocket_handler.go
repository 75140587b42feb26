package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/service/pubsub"
	"github.com/vendaflow/pos-api/internal/utils"
	"github.com/vendaflow/pos-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// WebSocketHandler pushes receivable events to connected dashboards. Events
// go through Redis pub/sub so clients on any API instance see them.
type WebSocketHandler struct {
	clients       map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	mutex         sync.RWMutex
	logger        *logger.Logger
	pubsub        *pubsub.RedisPubSub
	ctx           context.Context
	cancel        context.CancelFunc
	tenantClients map[string]int // Count of clients per tenant
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		logger:        logger,
		pubsub:        pubsub,
		ctx:           ctx,
		cancel:        cancel,
		tenantClients: make(map[string]int),
	}
}

// HandleWebSocket Stream receivable events
// @Summary Receivable event stream
// @Description Upgrades to a websocket that receives every receivable created or paid in the caller's tenant
// @Tags    receivables
// @Success 101
// @Failure 401 {object} dto.Error
// @Router  /receivables/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	tenantID, exists := c.Get(string(utils.TenantIDKey))
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No tenant ID found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenantID.(string),
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++

			// Subscribe to tenant's channel if this is the first client
			if h.tenantClients[client.tenantID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.tenantID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to tenant %s: %v", client.tenantID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.tenantClients[client.tenantID]--
				if h.tenantClients[client.tenantID] == 0 {
					h.pubsub.Unsubscribe(client.tenantID)
					delete(h.tenantClients, client.tenantID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handlePubSubMessage handles events received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(receivable *dto.ReceivableResponse) {
	message, err := json.Marshal(receivable)
	if err != nil {
		h.logger.Errorf("Error marshaling receivable: %v", err)
		return
	}

	// Write lock: evicting a slow client mutates the maps below.
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.tenantID == receivable.TenantID {
			select {
			case client.send <- message:
			default: // If the channel is full, close the channel and remove the client
				close(client.send)
				delete(h.clients, client)
				h.tenantClients[client.tenantID]--
				if h.tenantClients[client.tenantID] == 0 {
					h.pubsub.Unsubscribe(client.tenantID)
					delete(h.tenantClients, client.tenantID)
				}
			}
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.tenantID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.tenantID, err)
			}
			break
		}

		// Clients are not expected to send anything
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.tenantID, string(message))
		}
	}
}

// BroadcastReceivable publishes an event to all connected clients of the
// same tenant, across API instances.
func (h *WebSocketHandler) BroadcastReceivable(receivable *dto.ReceivableResponse) {
	if err := h.pubsub.Publish(h.ctx, receivable); err != nil {
		h.logger.Errorf("Failed to publish receivable: %v", err)
	}
}
