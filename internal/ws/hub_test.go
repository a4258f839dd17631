package ws

import (
	"testing"
	"time"
)

func TestHubEntregaAoDonoDaRota(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	dono := &Client{Message: make(chan *AceiteMessage, 1), UserId: 1}
	outro := &Client{Message: make(chan *AceiteMessage, 1), UserId: 2}
	hub.Register <- dono
	hub.Register <- outro

	hub.NotificarAceite(AceiteMessage{
		CompartilhamentoID: 10,
		RotaID:             7,
		StatusAceite:       "aceito",
		TypeMessage:        "aceite_compartilhamento",
		DonoID:             1,
	})

	select {
	case m := <-dono.Message:
		if m.RotaID != 7 || m.StatusAceite != "aceito" {
			t.Errorf("mensagem inesperada: %+v", m)
		}
	case <-time.After(time.Second):
		t.Fatal("dono da rota não recebeu a notificação")
	}

	select {
	case m := <-outro.Message:
		t.Errorf("outro usuário não deve receber a notificação: %+v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterFechaCanal(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	cl := &Client{Message: make(chan *AceiteMessage, 1), UserId: 3}
	hub.Register <- cl
	hub.Unregister <- cl

	select {
	case _, ok := <-cl.Message:
		if ok {
			t.Error("canal deveria estar fechado após o unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("canal não foi fechado")
	}
}
