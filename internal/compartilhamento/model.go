package compartilhamento

import "roteirizador/internal/roteirizador"

const (
	AceitePendente = "pendente"
	AceiteAceito   = "aceito"
	AceiteRecusado = "recusado"
)

type CompartilharRotaRequest struct {
	RotaID      int64  `json:"rota_id" validate:"required"`
	MotoristaID int64  `json:"motorista_id"`
	Telefone    string `json:"telefone"`
}

type CompartilharRotaDto struct {
	CompartilharRotaRequest
	UserID int64
}

type CompartilharRotaResponse struct {
	Sucesso         bool   `json:"sucesso"`
	ID              int64  `json:"id"`
	Token           string `json:"token"`
	Link            string `json:"link"`
	QRCodeBase64    string `json:"qr_code_base64"`
	StatusAceite    string `json:"status_aceite"`
	MensagemEnviada bool   `json:"mensagem_enviada"`
}

type ReenviarRequest struct {
	CompartilhamentoID int64 `json:"compartilhamento_id" validate:"required"`
}

type ReenviarDto struct {
	ReenviarRequest
	UserID int64
}

type ReenviarResponse struct {
	Sucesso         bool  `json:"sucesso"`
	Reenvios        int64 `json:"reenvios"`
	MensagemEnviada bool  `json:"mensagem_enviada"`
}

type AceiteRequest struct {
	Acao string `json:"acao" validate:"required,oneof=aceito recusado"`
}

type AceiteResponse struct {
	Sucesso      bool   `json:"sucesso"`
	StatusAceite string `json:"status_aceite"`
	Mensagem     string `json:"mensagem"`
}

// RotaCompartilhadaResponse é a visão pública da rota aberta pelo link do
// compartilhamento, sem dados do dono além do necessário para dirigir.
type RotaCompartilhadaResponse struct {
	RotaID         int64                        `json:"rota_id"`
	Nome           string                       `json:"nome"`
	Status         string                       `json:"status"`
	DistanciaTotal float64                      `json:"distancia_total"`
	TempoEstimado  float64                      `json:"tempo_estimado"`
	StatusAceite   string                       `json:"status_aceite"`
	Pontos         []roteirizador.PontoEmbarque `json:"pontos"`
}
