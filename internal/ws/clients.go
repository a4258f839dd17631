package ws

import (
	"github.com/gorilla/websocket"

	"roteirizador/internal/get_token"
)

type Client struct {
	Conn    *websocket.Conn          `json:"conn"`
	Message chan *AceiteMessage      `json:"message"`
	UserId  int64                    `json:"user_id"`
	Name    string                   `json:"name"`
	Payload get_token.PayloadUserDTO `json:"payload"`
}

func (c *Client) writeMessage() {
	defer func() {
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		message, ok := <-c.Message
		if !ok {
			return
		}

		err := c.Conn.WriteJSON(message)
		if err != nil {
			return
		}
	}
}

// readMessage só mantém a conexão aberta: o canal é unidirecional, do
// servidor para o dono da rota.
func (c *Client) readMessage(hub *Hub) {
	defer func() {
		hub.Unregister <- c
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
			) {
			}
			break
		}
	}
}
