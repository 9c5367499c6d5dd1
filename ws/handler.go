package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// El control de origen real lo hace la capa CORS del API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleLiveWebSocket suscribe al espectador a los cambios de estado del live.
func HandleLiveWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.Log.Warn().Err(err).Msg("No se pudo abrir el websocket")
		return
	}
	H.Register(conn)
}
