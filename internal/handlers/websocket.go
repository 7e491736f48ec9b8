package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/decred/slog"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

const (
	MessageGameCreated     = "GAME_CREATED"
	MessageGameUpdate      = "GAME_UPDATE"
	MessageGameWon         = "GAME_WON"
	MessagePing            = "PING"
	MessagePong            = "PONG"
	MessageSubscribeGame   = "SUBSCRIBE_GAME"
	MessageUnsubscribeGame = "UNSUBSCRIBE_GAME"

	writeWait  = 10 * time.Second
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub *WebSocketHub
	log slog.Logger
}

type WebSocketHub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	subscribe  chan subscription
	reply      chan reply
	broadcast  chan *Message
	done       chan struct{}
	log        slog.Logger
}

type Client struct {
	UserID int64
	Conn   *websocket.Conn

	send  chan *Message
	games map[string]bool
}

type subscription struct {
	client *Client
	gameID string
	on     bool
}

type reply struct {
	client  *Client
	message *Message
}

type Message struct {
	Type   string      `json:"type"`
	UserID int64       `json:"user_id,omitempty"`
	GameID string      `json:"game_id,omitempty"`
	Data   interface{} `json:"data"`
}

var _ services.Broadcaster = (*WebSocketHandler)(nil)

func NewWebSocketHandler(log slog.Logger) *WebSocketHandler {
	log = logging.OrDisabled(log)
	hub := &WebSocketHub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan subscription),
		reply:      make(chan reply),
		broadcast:  make(chan *Message, 100),
		done:       make(chan struct{}),
		log:        log,
	}

	go hub.run()

	return &WebSocketHandler{hub: hub, log: log}
}

// Close stops the hub and drops every client.
func (h *WebSocketHandler) Close() {
	close(h.hub.done)
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	client := &Client{
		UserID: userID,
		Conn:   conn,
		send:   make(chan *Message, sendBuffer),
		games:  make(map[string]bool),
	}

	if !h.hub.send(h.hub.register, client) {
		conn.Close()
		return
	}
	go client.writePump()

	defer func() {
		h.hub.send(h.hub.unregister, client)
		conn.Close()
	}()

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Debugf("WebSocket error: %v", err)
			}
			break
		}

		h.handleMessage(client, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(client *Client, msg *Message) {
	switch msg.Type {
	case MessagePing:
		select {
		case h.hub.reply <- reply{client: client, message: &Message{
			Type: MessagePong,
			Data: gin.H{"timestamp": time.Now().Unix()},
		}}:
		case <-h.hub.done:
		}
	case MessageSubscribeGame, MessageUnsubscribeGame:
		gameID := msg.GameID
		if gameID == "" {
			gameID, _ = msg.Data.(string)
		}
		if gameID == "" {
			return
		}
		select {
		case h.hub.subscribe <- subscription{client: client, gameID: gameID, on: msg.Type == MessageSubscribeGame}:
		case <-h.hub.done:
		}
	}
}

// send hands a client to the hub, reporting false once the hub has stopped.
func (hub *WebSocketHub) send(ch chan *Client, client *Client) bool {
	select {
	case ch <- client:
		return true
	case <-hub.done:
		return false
	}
}

func (c *Client) writePump() {
	for msg := range c.send {
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client] = true
			hub.log.Debugf("Client registered: %d", client.UserID)

		case client := <-hub.unregister:
			if _, ok := hub.clients[client]; ok {
				delete(hub.clients, client)
				close(client.send)
				hub.log.Debugf("Client unregistered: %d", client.UserID)
			}

		case sub := <-hub.subscribe:
			if _, ok := hub.clients[sub.client]; !ok {
				continue
			}
			if sub.on {
				sub.client.games[sub.gameID] = true
			} else {
				delete(sub.client.games, sub.gameID)
			}

		case r := <-hub.reply:
			if _, ok := hub.clients[r.client]; ok {
				hub.deliver(r.client, r.message)
			}

		case message := <-hub.broadcast:
			hub.broadcastMessage(message)

		case <-hub.done:
			for client := range hub.clients {
				close(client.send)
				delete(hub.clients, client)
			}
			return
		}
	}
}

// broadcastMessage sends to one user when UserID is set, to a game's
// subscribers for game updates, and to everyone otherwise.
func (hub *WebSocketHub) broadcastMessage(message *Message) {
	for client := range hub.clients {
		switch {
		case message.UserID != 0 && client.UserID != message.UserID:
			continue
		case message.Type == MessageGameUpdate && !client.games[message.GameID]:
			continue
		}
		hub.deliver(client, message)
	}
}

// deliver drops the message for a client whose buffer is full.
func (hub *WebSocketHub) deliver(client *Client, message *Message) {
	select {
	case client.send <- message:
	default:
		hub.log.Debugf("Dropping %s for slow client %d", message.Type, client.UserID)
	}
}

func (h *WebSocketHandler) publish(msg *Message) {
	select {
	case h.hub.broadcast <- msg:
	default:
		h.log.Warnf("WebSocket broadcast queue full, dropping %s", msg.Type)
	}
}

func (h *WebSocketHandler) BroadcastGameCreated(gameID uint64, topWord, bottomWord, entryFee string) {
	id := strconv.FormatUint(gameID, 10)
	h.publish(&Message{
		Type:   MessageGameCreated,
		GameID: id,
		Data: gin.H{
			"game_id":     id,
			"top_word":    topWord,
			"bottom_word": bottomWord,
			"entry_fee":   entryFee,
			"timestamp":   time.Now().Unix(),
		},
	})
}

func (h *WebSocketHandler) BroadcastGameUpdate(gameID uint64, totalPrize string) {
	id := strconv.FormatUint(gameID, 10)
	h.publish(&Message{
		Type:   MessageGameUpdate,
		GameID: id,
		Data: gin.H{
			"game_id":     id,
			"total_prize": totalPrize,
			"timestamp":   time.Now().Unix(),
		},
	})
}

func (h *WebSocketHandler) BroadcastGameWon(gameID uint64, winner, prize string) {
	id := strconv.FormatUint(gameID, 10)
	h.publish(&Message{
		Type:   MessageGameWon,
		GameID: id,
		Data: gin.H{
			"game_id":   id,
			"winner":    winner,
			"prize":     prize,
			"timestamp": time.Now().Unix(),
		},
	})
}
