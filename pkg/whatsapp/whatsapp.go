package whatsapp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

type mensagemRequest struct {
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem"`
}

type mensagemResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
}

// EnviarMensagem entrega o texto pelo provedor de WhatsApp configurado.
func EnviarMensagem(telefone, mensagem string) error {
	apiURL := os.Getenv("WHATSAPP_API_URL")
	apiToken := os.Getenv("WHATSAPP_API_TOKEN")
	if apiURL == "" || apiToken == "" {
		return fmt.Errorf("WHATSAPP_API_URL ou WHATSAPP_API_TOKEN não configurados")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+apiToken).
		SetHeader("Content-Type", "application/json").
		SetBody(mensagemRequest{Telefone: telefone, Mensagem: mensagem}).
		Post(apiURL)
	if err != nil {
		return fmt.Errorf("erro ao enviar mensagem: %w", err)
	}

	var parsed mensagemResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return fmt.Errorf("resposta inválida do provedor: %w", err)
	}
	if !parsed.Sucesso {
		return fmt.Errorf("provedor recusou a mensagem: %s", parsed.Mensagem)
	}
	return nil
}
