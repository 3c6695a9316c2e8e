// Package realtime pushes order changes to dashboard websocket clients.
package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	MessageOrderUpdate = "ORDER_UPDATE"
	MessageOrderDelete = "ORDER_DELETE"

	writeWait = 5 * time.Second
	// frames a client may fall behind by before it is dropped
	clientQueue = 16
)

// Message is the frame sent to every subscriber
type Message struct {
	Type  string       `json:"type"`
	Order models.Order `json:"order"`
}

// client is one dashboard connection. Only its writer goroutine writes to conn.
type client struct {
	conn *websocket.Conn
	send chan Message
}

// Hub owns the set of connected clients. Run must be started before clients connect.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan Message
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.Mutex
	upgrader   websocket.Upgrader
}

func NewHub(origins []string) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(origins),
		},
	}
}

func originChecker(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range origins {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Run serves register, unregister and broadcast until ctx is done, then closes every client.
// Broadcasting only queues frames, so a stalled client never holds up the others.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for c := range h.clients {
				h.drop(c)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				h.drop(c)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					logrus.Debug("Websocket client too slow, dropping it")
					h.drop(c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop forgets the client and closes its queue, which ends its writer. Callers hold h.mu.
func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}

// ClientCount reports the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// OrderChanged queues a frame for every client. It never blocks the caller: when the queue is full the frame is dropped.
func (h *Hub) OrderChanged(ctx context.Context, change services.OrderChange, order models.Order) {
	msg := Message{Type: MessageOrderUpdate, Order: order}
	if change == services.OrderDeleted {
		msg.Type = MessageOrderDelete
	}
	select {
	case h.broadcast <- msg:
	default:
		logrus.WithField("order", order.OrderNumber).Warn("Websocket broadcast queue full, dropping update")
	}
}

// HandleWebSocket upgrades GET /ws/orders. Clients only listen, anything they send is discarded.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Debug("Websocket upgrade failed")
		return
	}

	cl := &client{conn: conn, send: make(chan Message, clientQueue)}
	select {
	case h.register <- cl:
		go cl.write()
		go h.listen(cl)
	case <-h.done:
		conn.Close()
	}
}

// write drains the client's queue onto the socket until the hub closes the queue
func (c *client) write() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(msg); err != nil {
			logrus.WithError(err).Debug("Websocket write failed")
			// closing the socket ends listen, which unregisters the client and closes send
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) listen(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
