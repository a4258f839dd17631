package rotas_otimizadas

import (
	"time"

	"roteirizador/internal/roteirizador"
)

const (
	StatusRascunho  = "rascunho"
	StatusOtimizada = "otimizada"
	StatusAtiva     = "ativa"
	StatusConcluida = "concluida"
	StatusCancelada = "cancelada"
)

// Transições permitidas do ciclo de vida de uma rota. Transições são
// unidirecionais; reotimizar gera uma nova versão, nunca volta o status.
var transicoesValidas = map[string][]string{
	StatusRascunho:  {StatusOtimizada, StatusCancelada},
	StatusOtimizada: {StatusAtiva, StatusCancelada},
	StatusAtiva:     {StatusConcluida, StatusCancelada},
}

func PodeTransicionar(de, para string) bool {
	for _, permitido := range transicoesValidas[de] {
		if permitido == para {
			return true
		}
	}
	return false
}

type SalvarRotaRequest struct {
	Nome               string                        `json:"nome" validate:"required"`
	Descricao          string                        `json:"descricao"`
	Pontos             []roteirizador.PontoEmbarque  `json:"pontos" validate:"required,min=1"`
	DistanciaOriginal  float64                       `json:"distancia_original"`
	DistanciaOtimizada float64                       `json:"distancia_otimizada"`
	TempoEstimado      float64                       `json:"tempo_estimado"`
	Algoritmo          string                        `json:"algoritmo"`
	VeiculoID          int64                         `json:"veiculo_id"`
	MotoristaID        int64                         `json:"motorista_id"`
}

type SalvarRotaDto struct {
	SalvarRotaRequest SalvarRotaRequest
	UserID            int64
}

type SalvarRotaResponse struct {
	Sucesso  bool   `json:"sucesso"`
	RotaID   int64  `json:"rota_id"`
	Mensagem string `json:"mensagem"`
}

type AtualizarStatusRequest struct {
	RotaID int64  `json:"rota_id" validate:"required"`
	Status string `json:"status"  validate:"oneof=otimizada ativa concluida cancelada"`
}

type AtualizarStatusDto struct {
	AtualizarStatusRequest AtualizarStatusRequest
	UserID                 int64
}

type CriarVersaoRequest struct {
	RotaID           int64                        `json:"rota_id" validate:"required"`
	DescricaoMudanca string                       `json:"descricao_mudanca" validate:"required"`
	Pontos           []roteirizador.PontoEmbarque `json:"pontos" validate:"required,min=1"`
	DistanciaTotal   float64                      `json:"distancia_total"`
	TempoEstimado    float64                      `json:"tempo_estimado"`
	Economia         float64                      `json:"economia"`
}

type CriarVersaoDto struct {
	CriarVersaoRequest CriarVersaoRequest
	UserID             int64
}

type CriarVersaoResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Versao   int64  `json:"versao"`
	Mensagem string `json:"mensagem"`
}

type VersaoResponse struct {
	Versao           int64                        `json:"versao"`
	DescricaoMudanca string                       `json:"descricao_mudanca"`
	Pontos           []roteirizador.PontoEmbarque `json:"pontos"`
	DistanciaTotal   float64                      `json:"distancia_total"`
	TempoEstimado    float64                      `json:"tempo_estimado"`
	Economia         float64                      `json:"economia"`
	CriadaEm         time.Time                    `json:"criada_em"`
}

type HistoricoVersoesResponse struct {
	Versoes []VersaoResponse `json:"versoes"`
}

type RotaResponse struct {
	ID                 int64                        `json:"id"`
	Nome               string                       `json:"nome"`
	Descricao          string                       `json:"descricao"`
	Status             string                       `json:"status"`
	DistanciaTotal     float64                      `json:"distancia_total"`
	TempoEstimado      float64                      `json:"tempo_estimado"`
	DistanciaOriginal  float64                      `json:"distancia_original"`
	Economia           float64                      `json:"economia"`
	EconomiaPercentual float64                      `json:"economia_percentual"`
	Algoritmo          string                       `json:"algoritmo"`
	VeiculoID          int64                        `json:"veiculo_id,omitempty"`
	MotoristaID        int64                        `json:"motorista_id,omitempty"`
	Pontos             []roteirizador.PontoEmbarque `json:"pontos"`
	CriadaEm           time.Time                    `json:"criada_em"`
}
