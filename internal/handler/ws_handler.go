package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"upchat/internal/chat"
	"upchat/internal/config"
	"upchat/internal/domain"
	"upchat/internal/hub"
	"upchat/internal/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades HTTP requests to WebSocket connections and feeds parsed
// frames into the hub.
type WSHandler struct {
	hub   *hub.Hub
	wsCfg config.WebSocketConfig
}

func NewWSHandler(h *hub.Hub, wsCfg config.WebSocketConfig) *WSHandler {
	return &WSHandler{
		hub:   h,
		wsCfg: wsCfg,
	}
}

func (h *WSHandler) Handle(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		l.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := hub.NewClient(chat.Handle(uuid.New().String()), h.hub, conn, h.wsCfg)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.handleMessage)
}

func (h *WSHandler) handleMessage(client *hub.Client, message []byte) {
	var frame domain.Frame
	if err := json.Unmarshal(message, &frame); err != nil {
		l := log.L()
		l.Debug().Err(err).Str(log.FieldClientID, string(client.ID)).Msg("malformed frame dropped")
		return
	}
	h.hub.Forward(client, frame)
}
