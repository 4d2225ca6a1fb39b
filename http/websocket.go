package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"market-master/domain"
	"market-master/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS origins are enforced on the JSON API only
	},
}

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 1024
)

// WSMessage is sent to clients.
type WSMessage struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsRequest is read from clients. Calculator sockets use trigger/value,
// carousel sockets use type and index.
type wsRequest struct {
	Type    string `json:"type"`
	Trigger string `json:"trigger,omitempty"`
	Value   string `json:"value,omitempty"`
	Index   int    `json:"index,omitempty"`
}

type WebSocketHandler struct {
	sessions         *service.SessionService
	carouselInterval time.Duration
}

func NewWebSocketHandler(sessions *service.SessionService, carouselInterval time.Duration) *WebSocketHandler {
	return &WebSocketHandler{sessions: sessions, carouselInterval: carouselInterval}
}

// Session streams calculator snapshots: every event the client sends is
// applied to the session and answered with the new snapshot.
func (h *WebSocketHandler) Session(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	send := make(chan WSMessage, 16)
	go wsWritePump(ctx, conn, send)

	emit := func(msg WSMessage) {
		select {
		case send <- msg:
		case <-ctx.Done():
		}
	}

	emit(WSMessage{Type: "snapshot", Data: snap})
	wsReadPump(conn, func(req wsRequest) {
		if req.Type == "ping" {
			emit(WSMessage{Type: "pong"})
			return
		}
		snap, err := h.sessions.Dispatch(ctx, id, domain.CalculatorEvent{Trigger: req.Trigger, Value: req.Value})
		if err != nil {
			emit(WSMessage{Type: "error", Error: err.Error()})
			return
		}
		emit(WSMessage{Type: "snapshot", Data: snap})
	})
}

// Carousel drives a testimonial carousel with ?slides=N slides. The server
// announces each auto-advance; clients send pause, resume, show and next.
func (h *WebSocketHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	slides, err := strconv.Atoi(r.URL.Query().Get("slides"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "slides must be a number")
		return
	}
	carousel, err := service.NewCarousel(slides, h.carouselInterval)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	send := make(chan WSMessage, 16)
	go wsWritePump(ctx, conn, send)

	slide := func(i int) {
		select {
		case send <- WSMessage{Type: "slide", Data: i}:
		case <-ctx.Done():
		}
	}
	send <- WSMessage{Type: "init", Data: map[string]interface{}{
		"slides": carousel.Slides(),
		"dots":   carousel.DotLabels(),
		"active": carousel.Current(),
	}}
	go carousel.Run(ctx, slide)

	wsReadPump(conn, func(req wsRequest) {
		switch req.Type {
		case "pause":
			carousel.Pause()
		case "resume":
			carousel.Resume()
		case "next":
			slide(carousel.Next())
		case "show":
			if err := carousel.Show(req.Index); err != nil {
				send <- WSMessage{Type: "error", Error: err.Error()}
				return
			}
			slide(req.Index)
		case "ping":
			send <- WSMessage{Type: "pong"}
		}
	})
}

// Counter animates a stat counter such as ?text=500%2B from zero, one
// "frame" message per step, then "done".
func (h *WebSocketHandler) Counter(w http.ResponseWriter, r *http.Request) {
	counter, ok := service.ParseCounter(r.URL.Query().Get("text"))
	if !ok {
		writeError(w, http.StatusBadRequest, "text must contain a number")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	send := make(chan WSMessage, 16)
	go wsWritePump(ctx, conn, send)

	emit := func(msg WSMessage) {
		select {
		case send <- msg:
		case <-ctx.Done():
		}
	}
	go func() {
		if err := counter.Animate(ctx, func(text string) {
			emit(WSMessage{Type: "frame", Data: text})
		}); err == nil {
			emit(WSMessage{Type: "done", Data: counter.Render(counter.Target)})
		}
	}()

	wsReadPump(conn, func(req wsRequest) {
		if req.Type == "ping" {
			emit(WSMessage{Type: "pong"})
		}
	})
}

// wsReadPump reads client messages until the connection drops.
func wsReadPump(conn *websocket.Conn, handle func(wsRequest)) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(message, &req); err != nil {
			continue
		}
		handle(req)
	}
}

// wsWritePump is the only writer on conn.
func wsWritePump(ctx context.Context, conn *websocket.Conn, send <-chan WSMessage) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case msg := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("WebSocket marshal error: %v", err)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
