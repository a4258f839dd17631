package importacao

import (
	"time"

	"roteirizador/internal/duplicatas"
)

const (
	TurnoManha = "MANHÃ"
	TurnoTarde = "TARDE"
	TurnoNoite = "NOITE"
)

type ImportarViagensRequest struct {
	ArquivoBase64          string  `json:"arquivo_base64" validate:"required"`
	NomeArquivo            string  `json:"nome_arquivo"   validate:"required"`
	MesclarAutomaticamente bool    `json:"mesclar_automaticamente"`
	LimiarDuplicatas       float64 `json:"limiar_duplicatas"`
}

type ImportarViagensDto struct {
	ImportarViagensRequest ImportarViagensRequest
	UserID                 int64
}

type ViagemImportada struct {
	Passageiro string `json:"passageiro"`
	Cidade     string `json:"cidade"`
	Endereco   string `json:"endereco"`
	Turno      string `json:"turno"`
	Horario    string `json:"horario"`
}

type ImportarViagensResponse struct {
	Sucesso             bool                                 `json:"sucesso"`
	HistoricoID         int64                                `json:"historico_id"`
	TotalRegistros      int                                  `json:"total_registros"`
	RegistrosImportados int                                  `json:"registros_importados"`
	Duplicatas          duplicatas.DetectarDuplicatasResponse `json:"duplicatas"`
	DuplicatasMescladas int                                  `json:"duplicatas_mescladas"`
	UrlArquivo          string                               `json:"url_arquivo,omitempty"`
}

type HistoricoImportacaoResponse struct {
	ID                   int64     `json:"id"`
	NomeArquivo          string    `json:"nome_arquivo"`
	UrlArquivo           string    `json:"url_arquivo,omitempty"`
	TotalRegistros       int64     `json:"total_registros"`
	RegistrosImportados  int64     `json:"registros_importados"`
	DuplicatasDetectadas int64     `json:"duplicatas_detectadas"`
	DuplicatasMescladas  int64     `json:"duplicatas_mescladas"`
	ImportadaEm          time.Time `json:"importada_em"`
}
