package dashboard

import "time"

type RotasPorStatus struct {
	Status        string  `json:"status"`
	Total         int64   `json:"total"`
	EconomiaTotal float64 `json:"economia_total"`
	EconomiaMedia float64 `json:"economia_media"`
}

type ResumoFrota struct {
	MotoristasAtivos int64 `json:"motoristas_ativos"`
	VeiculosAtivos   int64 `json:"veiculos_ativos"`
}

type ResumoDuplicatas struct {
	Mescladas int64 `json:"mescladas"`
	Total     int64 `json:"total"`
}

type ImportacaoRecente struct {
	ID                   int64     `json:"id"`
	NomeArquivo          string    `json:"nome_arquivo"`
	TotalRegistros       int64     `json:"total_registros"`
	RegistrosImportados  int64     `json:"registros_importados"`
	DuplicatasDetectadas int64     `json:"duplicatas_detectadas"`
	ImportadaEm          time.Time `json:"importada_em"`
}

type DashboardResponse struct {
	TotalRotas          int64               `json:"total_rotas"`
	EconomiaAcumulada   float64             `json:"economia_acumulada"`
	RotasPorStatus      []RotasPorStatus    `json:"rotas_por_status"`
	Frota               ResumoFrota         `json:"frota"`
	Duplicatas          ResumoDuplicatas    `json:"duplicatas"`
	ImportacoesRecentes []ImportacaoRecente `json:"importacoes_recentes"`
}
