package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"giramae/internal/adapter/http/middleware"
	"giramae/internal/usecase"
	"giramae/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = 54 * time.Second
	maxMessageSize   = 512
	sendBuffer       = 256
	subscribeTimeout = 10 * time.Second
)

// resubscribeDelay is how long a session waits before subscribing again after the
// broker dropped it.
var resubscribeDelay = 2 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub keeps the websocket clients of each user. All clients of a user share one
// ChangeListener: the first connection subscribes it and the last disconnect tears
// it down.
type Hub struct {
	broker interfaces.IChangeBroker
	cache  *usecase.QueueInfoCache

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	clients  map[*Client]struct{}
	listener *usecase.ChangeListener
}

// Client is one websocket connection.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
}

func NewHub(broker interfaces.IChangeBroker, cache *usecase.QueueInfoCache) *Hub {
	return &Hub{broker: broker, cache: cache, sessions: make(map[string]*session)}
}

// Clients reports how many connections a user has open.
func (h *Hub) Clients(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.sessions[userID]; ok {
		return len(s.clients)
	}
	return 0
}

func (h *Hub) register(c *Client) error {
	h.mu.Lock()
	s, ok := h.sessions[c.userID]
	if !ok {
		userID := c.userID
		s = &session{clients: make(map[*Client]struct{})}
		s.listener = usecase.NewChangeListener(h.broker, h.cache, func(m usecase.RealtimeMessage) {
			h.deliver(userID, m)
		})
		h.sessions[userID] = s
	}
	s.clients[c] = struct{}{}
	listener := s.listener
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), subscribeTimeout)
	defer cancel()
	return listener.EnsureSubscribed(ctx, c.userID)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	listener := h.removeLocked(c)
	h.mu.Unlock()
	if listener != nil {
		listener.Teardown()
	}
}

// removeLocked drops c and returns the session listener when c was the last client.
func (h *Hub) removeLocked(c *Client) *usecase.ChangeListener {
	s, ok := h.sessions[c.userID]
	if !ok {
		return nil
	}
	if _, ok := s.clients[c]; !ok {
		return nil
	}
	delete(s.clients, c)
	close(c.send)
	if len(s.clients) > 0 {
		return nil
	}
	delete(h.sessions, c.userID)
	return s.listener
}

func (h *Hub) deliver(userID string, m usecase.RealtimeMessage) {
	payload, err := json.Marshal(m)
	if err != nil {
		log.Printf("[realtime][hub] encode failed user_id=%s type=%s err=%v", userID, m.Type, err)
		return
	}

	h.mu.Lock()
	s, ok := h.sessions[userID]
	if !ok {
		h.mu.Unlock()
		return
	}
	var emptied *usecase.ChangeListener
	for c := range s.clients {
		select {
		case c.send <- payload:
		default:
			log.Printf("[realtime][hub] slow client dropped user_id=%s", userID)
			if l := h.removeLocked(c); l != nil {
				emptied = l
			}
		}
	}
	h.mu.Unlock()

	if emptied != nil {
		emptied.Teardown()
		return
	}
	if m.Type == usecase.MessageResync {
		go h.resubscribe(userID)
	}
}

func (h *Hub) resubscribe(userID string) {
	time.Sleep(resubscribeDelay)
	h.mu.Lock()
	s, ok := h.sessions[userID]
	h.mu.Unlock()
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), subscribeTimeout)
	defer cancel()
	if err := s.listener.EnsureSubscribed(ctx, userID); err != nil {
		log.Printf("[realtime][hub] resubscribe failed user_id=%s err=%v", userID, err)
	}
}

// ServeWS upgrades an authenticated request and streams the user's change messages.
//
// @Summary Realtime change stream
// @Description Websocket. Messages: tier_unlocked, reserva_atualizada, resync.
// @Tags realtime
// @Param access_token query string false "JWT when headers cannot be set"
// @Success 101
// @Security BearerAuth
// @Router /v1/realtime [get]
func (h *Hub) ServeWS(c *gin.Context) {
	userID := middleware.UserID(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[realtime][hub] upgrade failed user_id=%s err=%v", userID, err)
		return
	}
	client := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), userID: userID}
	if err := h.register(client); err != nil {
		log.Printf("[realtime][hub] subscribe failed user_id=%s err=%v", userID, err)
		h.unregister(client)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscription unavailable"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	log.Printf("[realtime][hub] connected user_id=%s", userID)

	go client.writePump()
	client.readPump()
}

// readPump only watches for disconnects; clients do not send messages.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
		log.Printf("[realtime][hub] disconnected user_id=%s", c.userID)
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
