package roteirizador

const (
	AlgoritmoSequencial      = "sequencial"
	AlgoritmoNearestNeighbor = "nearest_neighbor"
	AlgoritmoGenetico        = "genetic"
)

type Parada struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Endereco  string  `json:"endereco"`
	Latitude  float64 `json:"latitude"  validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	// DistanciaAnterior em km, quando a fonte primária já fornece a perna.
	DistanciaAnterior float64 `json:"distancia_anterior"`
}

type OtimizarRotaRequest struct {
	Nome    string   `json:"nome"`
	Paradas []Parada `json:"paradas" validate:"required,min=1,dive"`
	// MaxDistanciaCluster em km; zero usa o padrão configurado.
	MaxDistanciaCluster float64 `json:"max_distancia_cluster"`
	// MaxTempoRota em minutos; zero usa o padrão configurado.
	MaxTempoRota float64 `json:"max_tempo_rota"`
	// VelocidadeMedia em km/h para estimar tempos quando não há dados de tráfego.
	VelocidadeMedia float64 `json:"velocidade_media"`
	HorarioSaida    string  `json:"horario_saida"`
	Algoritmo       string  `json:"algoritmo"`
}

type PontoEmbarque struct {
	Nome              string   `json:"nome"`
	Endereco          string   `json:"endereco"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Sequencia         int      `json:"sequencia"`
	HorarioChegada    string   `json:"horario_chegada"`
	DistanciaAnterior float64  `json:"distancia_anterior"`
	Passageiros       []string `json:"passageiros"`
}

type OtimizarRotaResponse struct {
	Nome               string          `json:"nome"`
	DistanciaTotal     float64         `json:"distancia_total"`
	DistanciaOriginal  float64         `json:"distancia_original"`
	Economia           float64         `json:"economia"`
	EconomiaPercentual float64         `json:"economia_percentual"`
	TempoEstimado      float64         `json:"tempo_estimado"`
	Algoritmo          string          `json:"algoritmo"`
	PontosEmbarque     []PontoEmbarque `json:"pontos_embarque"`
	Avisos             []string        `json:"avisos,omitempty"`
}
