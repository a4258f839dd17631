package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"roteirizador/internal/get_token"
)

type Handler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWs godoc
// @Summary Acompanhar aceites em tempo real.
// @Description Abre a conexão websocket que recebe as mudanças de status dos compartilhamentos das rotas do usuário.
// @Tags Compartilhamentos
// @Router /ws [get]
// @Security ApiKeyAuth
func (h *Handler) HandleWs(c echo.Context) error {
	payload := get_token.GetUserPayloadToken(c)

	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println(err)
		return err
	}

	cl := &Client{
		Conn:    conn,
		Message: make(chan *AceiteMessage, 10),
		UserId:  payload.ID,
		Name:    payload.Name,
		Payload: payload,
	}

	h.hub.Register <- cl

	go cl.writeMessage()

	cl.readMessage(h.hub)

	return nil
}
