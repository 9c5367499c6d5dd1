package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mantiene a los espectadores conectados a la portada para avisarles
// cuando se habilita o apaga la transmisión en vivo.
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

// LiveStatusUpdate es el mensaje que se envía a los espectadores.
type LiveStatusUpdate struct {
	Event          string `json:"event"` // live_enabled | live_disabled
	VideoID        string `json:"video_id,omitempty"`
	Title          string `json:"title,omitempty"`
	YoutubeVideoID string `json:"youtube_video_id,omitempty"`
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.readPump(conn)
	go h.writePump(conn)
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
		conn.Close()
	}
}

// readPump solo drena mensajes entrantes; los espectadores no publican nada.
func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client, ok := h.Clients[conn]
	h.Mutex.RUnlock()
	if !ok {
		return
	}
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.unregister(conn)
			return
		}
	}
}

// BroadcastLiveStatus envía el cambio de estado a todos los conectados.
func (h *Hub) BroadcastLiveStatus(update LiveStatusUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		config.Log.Error().Err(err).Msg("No se pudo serializar el estado del live")
		return
	}

	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	for _, client := range h.Clients {
		select {
		case client.Send <- payload:
		default:
			// Cliente lento: se descarta el mensaje, no se bloquea el broadcast
		}
	}
}

// Count devuelve la cantidad de espectadores conectados.
func (h *Hub) Count() int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return len(h.Clients)
}
