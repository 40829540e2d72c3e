package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/sraidytech/Inventory-Management-sub001/pkg/logger"
)

type registration struct {
	userID string
	conn   *websocket.Conn
}

type tenantMessage struct {
	userID  string
	payload []byte
}

// Hub fans live events out to the websocket connections of a single
// tenant. Connections are keyed by user id so one tenant never sees
// another tenant's notifications.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool
	register   chan registration
	unregister chan registration
	publish    chan tenantMessage
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		register:   make(chan registration),
		unregister: make(chan registration),
		publish:    make(chan tenantMessage, 64),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.register <- registration{userID: userID, conn: conn}
}

func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.unregister <- registration{userID: userID, conn: conn}
}

// Notify queues a JSON payload for every connection of the tenant.
// Marshal failures are logged and dropped; pushes are best-effort.
func (h *Hub) Notify(userID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("ws: payload marshal failed", "error", err)
		return
	}
	h.publish <- tenantMessage{userID: userID, payload: msg}
}

func (h *Hub) Run() {
	for {
		select {
		case reg := <-h.register:
			h.mutex.Lock()
			if h.clients[reg.userID] == nil {
				h.clients[reg.userID] = make(map[*websocket.Conn]bool)
			}
			h.clients[reg.userID][reg.conn] = true
			h.mutex.Unlock()
			logger.Debug("ws: client connected", "user_id", reg.userID)

		case reg := <-h.unregister:
			h.mutex.Lock()
			if conns, ok := h.clients[reg.userID]; ok {
				if _, ok := conns[reg.conn]; ok {
					delete(conns, reg.conn)
					reg.conn.Close()
				}
				if len(conns) == 0 {
					delete(h.clients, reg.userID)
				}
			}
			h.mutex.Unlock()

		case msg := <-h.publish:
			h.mutex.Lock()
			for conn := range h.clients[msg.userID] {
				if err := conn.WriteMessage(websocket.TextMessage, msg.payload); err != nil {
					conn.Close()
					delete(h.clients[msg.userID], conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
