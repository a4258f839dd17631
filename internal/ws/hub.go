package ws

import "sync"

// AceiteMessage é a notificação enviada ao dono da rota quando um
// compartilhamento muda de status.
type AceiteMessage struct {
	CompartilhamentoID int64  `json:"compartilhamento_id"`
	RotaID             int64  `json:"rota_id"`
	MotoristaID        int64  `json:"motorista_id,omitempty"`
	StatusAceite       string `json:"status_aceite"`
	TypeMessage        string `json:"type_message"`
	DonoID             int64  `json:"-"`
}

type Hub struct {
	Clients    map[int64]*Client
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *AceiteMessage
	Mu         *sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[int64]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan *AceiteMessage, 5),
		Mu:         &sync.RWMutex{},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case cl := <-h.Register:
			h.Mu.Lock()
			if _, ok := h.Clients[cl.UserId]; !ok {
				h.Clients[cl.UserId] = cl
			}
			h.Mu.Unlock()

		case cl := <-h.Unregister:
			h.Mu.Lock()
			if _, ok := h.Clients[cl.UserId]; ok {
				delete(h.Clients, cl.UserId)
				close(cl.Message)
			}
			h.Mu.Unlock()

		case m := <-h.Broadcast:
			h.Mu.RLock()
			if cl, ok := h.Clients[m.DonoID]; ok {
				cl.Message <- m
			}
			h.Mu.RUnlock()
		}
	}
}

// NotificarAceite publica a atualização para o dono da rota. Quem não está
// conectado simplesmente não recebe; o status fica no banco de qualquer forma.
func (h *Hub) NotificarAceite(m AceiteMessage) {
	h.Broadcast <- &m
}
