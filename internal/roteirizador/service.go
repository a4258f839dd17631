package roteirizador

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

type InterfaceService interface {
	OtimizarRotaService(ctx context.Context, data OtimizarRotaRequest) (OtimizarRotaResponse, error)
}

type Service struct {
	GoogleMapsAPIKey     string
	MaxDistanciaCluster  float64
	MaxTempoRota         float64
	MaxParadasPorCluster int
}

func NewRoteirizadorService(googleMapsAPIKey string, maxDistanciaCluster, maxTempoRota float64, maxParadasPorCluster int) *Service {
	return &Service{
		GoogleMapsAPIKey:     googleMapsAPIKey,
		MaxDistanciaCluster:  maxDistanciaCluster,
		MaxTempoRota:         maxTempoRota,
		MaxParadasPorCluster: maxParadasPorCluster,
	}
}

type perna struct {
	distanciaKm float64
	duracao     time.Duration
}

const velocidadeMediaPadrao = 40.0 // km/h

func (s *Service) OtimizarRotaService(ctx context.Context, data OtimizarRotaRequest) (OtimizarRotaResponse, error) {
	maxDistancia := data.MaxDistanciaCluster
	if maxDistancia <= 0 {
		maxDistancia = s.MaxDistanciaCluster
	}
	maxTempo := data.MaxTempoRota
	if maxTempo <= 0 {
		maxTempo = s.MaxTempoRota
	}
	velocidade := data.VelocidadeMedia
	if velocidade <= 0 {
		velocidade = velocidadeMediaPadrao
	}
	algoritmo := data.Algoritmo
	if algoritmo == "" {
		algoritmo = AlgoritmoNearestNeighbor
	}

	clusters := agruparParadas(data.Paradas, maxDistancia, s.MaxParadasPorCluster)
	ordenados := ordenarClusters(clusters)

	pernas := s.pernasEntreClusters(ctx, ordenados, velocidade)

	saida, err := time.Parse("15:04", data.HorarioSaida)
	if err != nil {
		saida, _ = time.Parse("15:04", "08:00")
	}

	var distanciaTotal float64
	var tempoTotal time.Duration
	pontos := make([]PontoEmbarque, 0, len(ordenados))
	horario := saida

	for i, cl := range ordenados {
		distanciaAnterior := 0.0
		if i > 0 {
			distanciaAnterior = pernas[i-1].distanciaKm
			distanciaTotal += pernas[i-1].distanciaKm
			tempoTotal += pernas[i-1].duracao
			horario = horario.Add(pernas[i-1].duracao)
		}

		passageiros := make([]string, 0, len(cl.paradas))
		for _, p := range cl.paradas {
			if p.Nome != "" {
				passageiros = append(passageiros, p.Nome)
			}
		}

		pontos = append(pontos, PontoEmbarque{
			Nome:              nomeDoPonto(cl, i),
			Endereco:          cl.paradas[0].Endereco,
			Latitude:          cl.lat,
			Longitude:         cl.lng,
			Sequencia:         i + 1,
			HorarioChegada:    horario.Format("15:04"),
			DistanciaAnterior: distanciaAnterior,
			Passageiros:       passageiros,
		})
	}

	original := distanciaOriginal(data.Paradas)
	economia, percentual := calcularEconomia(original, distanciaTotal)
	tempoEstimado := tempoTotal.Minutes()

	response := OtimizarRotaResponse{
		Nome:               data.Nome,
		DistanciaTotal:     distanciaTotal,
		DistanciaOriginal:  original,
		Economia:           economia,
		EconomiaPercentual: percentual,
		TempoEstimado:      tempoEstimado,
		Algoritmo:          algoritmo,
		PontosEmbarque:     pontos,
	}
	if maxTempo > 0 && tempoEstimado > maxTempo {
		response.Avisos = append(response.Avisos,
			fmt.Sprintf("tempo estimado de %.0f minutos excede o limite de %.0f minutos", tempoEstimado, maxTempo))
	}
	return response, nil
}

func nomeDoPonto(cl cluster, indice int) string {
	if len(cl.paradas) == 1 && cl.paradas[0].Nome != "" {
		return cl.paradas[0].Nome
	}
	return fmt.Sprintf("Ponto de embarque %d", indice+1)
}

// pernasEntreClusters busca as pernas consecutivas na Distance Matrix quando
// há chave de API; sem chave ou em caso de falha degrada para Haversine com
// tempo estimado pela velocidade média.
func (s *Service) pernasEntreClusters(ctx context.Context, ordenados []cluster, velocidade float64) []perna {
	if len(ordenados) < 2 {
		return nil
	}

	if s.GoogleMapsAPIKey != "" {
		pernas, err := s.pernasGoogle(ctx, ordenados)
		if err == nil {
			return pernas
		}
		log.Println("erro na Distance Matrix, usando Haversine:", err)
	}

	pernas := make([]perna, len(ordenados)-1)
	for i := 0; i < len(ordenados)-1; i++ {
		d := Haversine(ordenados[i].lat, ordenados[i].lng, ordenados[i+1].lat, ordenados[i+1].lng)
		pernas[i] = perna{
			distanciaKm: d,
			duracao:     time.Duration(d / velocidade * float64(time.Hour)),
		}
	}
	return pernas
}

func (s *Service) pernasGoogle(ctx context.Context, ordenados []cluster) ([]perna, error) {
	client, err := maps.NewClient(maps.WithAPIKey(s.GoogleMapsAPIKey))
	if err != nil {
		return nil, err
	}

	origens := make([]string, 0, len(ordenados)-1)
	destinos := make([]string, 0, len(ordenados)-1)
	for i := 0; i < len(ordenados)-1; i++ {
		origens = append(origens, fmt.Sprintf("%f,%f", ordenados[i].lat, ordenados[i].lng))
		destinos = append(destinos, fmt.Sprintf("%f,%f", ordenados[i+1].lat, ordenados[i+1].lng))
	}

	resp, err := client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      origens,
		Destinations: destinos,
	})
	if err != nil {
		return nil, err
	}
	return pernasDaMatriz(resp, len(origens))
}

// pernasDaMatriz lê a diagonal da resposta (origem i -> destino i). Resposta
// mais curta que o pedido vira erro, e o chamador degrada para Haversine.
func pernasDaMatriz(resp *maps.DistanceMatrixResponse, total int) ([]perna, error) {
	pernas := make([]perna, total)
	for i := 0; i < total; i++ {
		if i >= len(resp.Rows) || i >= len(resp.Rows[i].Elements) {
			return nil, fmt.Errorf("resposta da Distance Matrix incompleta: esperava %d pernas", total)
		}
		elemento := resp.Rows[i].Elements[i]
		if !strings.EqualFold(elemento.Status, "OK") {
			return nil, fmt.Errorf("perna %d retornou status %s", i, elemento.Status)
		}
		pernas[i] = perna{
			distanciaKm: float64(elemento.Distance.Meters) / 1000,
			duracao:     elemento.Duration,
		}
	}
	return pernas, nil
}
