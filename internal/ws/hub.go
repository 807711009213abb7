package ws

import (
	"log"
	"net/http"
	"sync"

	"decor-backend/internal/store"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn     *websocket.Conn
	clientID string
}

// Hub fans store change notifications out to connected admin tabs. A client
// that supplies its id on connect is not sent changes it made itself; that
// keeps the browser-tab sync loop from echoing.
type Hub struct {
	st *store.Store

	clients    map[*client]bool
	clientsMux sync.Mutex
	broadcast  chan store.Change

	unsubscribe func()
	stopChan    chan struct{}
}

func NewHub(st *store.Store) *Hub {
	return &Hub{
		st:        st,
		clients:   make(map[*client]bool),
		broadcast: make(chan store.Change, 64),
		stopChan:  make(chan struct{}),
	}
}

// Start subscribes the hub to store changes and runs the broadcaster.
func (h *Hub) Start() {
	h.unsubscribe = h.st.Subscribe(func(c store.Change) {
		select {
		case h.broadcast <- c:
		default:
			// Slow broadcaster; dropping is safer than blocking a write.
			log.Println("[WS] Broadcast buffer full, dropping change")
		}
	})
	go h.handleBroadcast()
}

func (h *Hub) Stop() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
	close(h.stopChan)
}

// HandleWebSocket upgrades the connection and registers the client. The
// client id comes from the "client" query parameter.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[WS] Upgrade error:", err)
		return
	}
	defer conn.Close()

	c := &client{conn: conn, clientID: r.URL.Query().Get("client")}

	h.clientsMux.Lock()
	h.clients[c] = true
	h.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			h.clientsMux.Lock()
			delete(h.clients, c)
			h.clientsMux.Unlock()
			break
		}
	}
}

func (h *Hub) handleBroadcast() {
	for {
		select {
		case change := <-h.broadcast:
			h.clientsMux.Lock()
			for c := range h.clients {
				if c.clientID != "" && c.clientID == change.Origin {
					continue
				}
				if err := c.conn.WriteJSON(change); err != nil {
					c.conn.Close()
					delete(h.clients, c)
				}
			}
			h.clientsMux.Unlock()
		case <-h.stopChan:
			return
		}
	}
}

// ClientCount reports currently connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}
