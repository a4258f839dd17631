package roteirizador

import (
	"context"
	"reflect"
	"testing"
	"time"

	"googlemaps.github.io/maps"
)

func newTestService() *Service {
	return NewRoteirizadorService("", 0.5, 120, 8)
}

func paradasDeTeste() []Parada {
	return []Parada{
		{Nome: "Maria", Endereco: "Centro", Latitude: -23.5505, Longitude: -46.6333},
		{Nome: "João", Endereco: "Centro", Latitude: -23.5509, Longitude: -46.6330},
		{Nome: "Ana", Endereco: "Centro", Latitude: -23.5501, Longitude: -46.6336},
		{Nome: "Pedro", Endereco: "Zona Sul", Latitude: -23.6000, Longitude: -46.7000},
		{Nome: "Clara", Endereco: "Zona Sul", Latitude: -23.6005, Longitude: -46.7003},
	}
}

func TestOtimizarRotaService(t *testing.T) {
	s := newTestService()

	result, err := s.OtimizarRotaService(context.Background(), OtimizarRotaRequest{
		Nome:    "Rota da manhã",
		Paradas: paradasDeTeste(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.PontosEmbarque) != 2 {
		t.Fatalf("esperava 2 pontos de embarque, obteve %d", len(result.PontosEmbarque))
	}
	for i, ponto := range result.PontosEmbarque {
		if ponto.Sequencia != i+1 {
			t.Errorf("sequência deve ser densa a partir de 1: ponto %d tem sequência %d", i, ponto.Sequencia)
		}
	}
	if result.PontosEmbarque[0].DistanciaAnterior != 0 {
		t.Errorf("primeiro ponto não tem perna anterior, obteve %v", result.PontosEmbarque[0].DistanciaAnterior)
	}
	if result.PontosEmbarque[1].DistanciaAnterior <= 0 {
		t.Error("segundo ponto deve registrar a distância da perna anterior")
	}
	if result.PontosEmbarque[0].HorarioChegada != "08:00" {
		t.Errorf("sem horário de saída o padrão é 08:00, obteve %q", result.PontosEmbarque[0].HorarioChegada)
	}
	if len(result.PontosEmbarque[0].Passageiros) != 3 {
		t.Errorf("primeiro ponto deveria embarcar 3 passageiros, obteve %d", len(result.PontosEmbarque[0].Passageiros))
	}

	if result.DistanciaOriginal <= result.DistanciaTotal {
		t.Errorf("agrupamento deve reduzir a distância: original %v, otimizada %v",
			result.DistanciaOriginal, result.DistanciaTotal)
	}
	if result.Economia <= 0 || result.EconomiaPercentual <= 0 {
		t.Errorf("economia deve ser positiva: %v (%v%%)", result.Economia, result.EconomiaPercentual)
	}
	if result.Algoritmo != AlgoritmoNearestNeighbor {
		t.Errorf("algoritmo padrão deve ser nearest_neighbor, obteve %q", result.Algoritmo)
	}
}

func TestOtimizarRotaServiceDeterministica(t *testing.T) {
	s := newTestService()
	request := OtimizarRotaRequest{Nome: "Rota", Paradas: paradasDeTeste()}

	primeira, err := s.OtimizarRotaService(context.Background(), request)
	if err != nil {
		t.Fatal(err)
	}
	segunda, err := s.OtimizarRotaService(context.Background(), request)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(primeira, segunda) {
		t.Error("a mesma entrada deve produzir sempre a mesma rota")
	}
}

func TestOtimizarRotaServiceParadaUnica(t *testing.T) {
	s := newTestService()

	result, err := s.OtimizarRotaService(context.Background(), OtimizarRotaRequest{
		Paradas: []Parada{{Nome: "Maria", Latitude: -23.5505, Longitude: -46.6333}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.PontosEmbarque) != 1 {
		t.Fatalf("esperava 1 ponto de embarque, obteve %d", len(result.PontosEmbarque))
	}
	if result.DistanciaTotal != 0 || result.TempoEstimado != 0 {
		t.Errorf("parada única não percorre distância: %v km, %v min",
			result.DistanciaTotal, result.TempoEstimado)
	}
	if result.EconomiaPercentual != 0 {
		t.Errorf("distância original zero deve dar percentual zero, obteve %v", result.EconomiaPercentual)
	}
}

func TestOtimizarRotaServiceHorarioDeSaida(t *testing.T) {
	s := newTestService()

	result, err := s.OtimizarRotaService(context.Background(), OtimizarRotaRequest{
		Paradas:      paradasDeTeste(),
		HorarioSaida: "07:30",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.PontosEmbarque[0].HorarioChegada != "07:30" {
		t.Errorf("primeiro ponto deve partir no horário de saída, obteve %q",
			result.PontosEmbarque[0].HorarioChegada)
	}
	if result.PontosEmbarque[1].HorarioChegada <= "07:30" {
		t.Errorf("ponto seguinte deve chegar depois da saída, obteve %q",
			result.PontosEmbarque[1].HorarioChegada)
	}
}

func TestPernasDaMatriz(t *testing.T) {
	resp := &maps.DistanceMatrixResponse{
		Rows: []maps.DistanceMatrixElementsRow{
			{Elements: []*maps.DistanceMatrixElement{
				{Status: "OK", Distance: maps.Distance{Meters: 1500}, Duration: 3 * time.Minute},
			}},
		},
	}

	pernas, err := pernasDaMatriz(resp, 1)
	if err != nil {
		t.Fatal(err)
	}
	if pernas[0].distanciaKm != 1.5 || pernas[0].duracao != 3*time.Minute {
		t.Errorf("perna inesperada: %+v", pernas[0])
	}
}

func TestPernasDaMatrizRespostaIncompleta(t *testing.T) {
	tests := []struct {
		name string
		resp *maps.DistanceMatrixResponse
	}{
		{"sem linhas", &maps.DistanceMatrixResponse{}},
		{"linha sem elementos", &maps.DistanceMatrixResponse{
			Rows: []maps.DistanceMatrixElementsRow{{}, {}},
		}},
		{"menos linhas que pernas", &maps.DistanceMatrixResponse{
			Rows: []maps.DistanceMatrixElementsRow{
				{Elements: []*maps.DistanceMatrixElement{
					{Status: "OK", Distance: maps.Distance{Meters: 1000}},
				}},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := pernasDaMatriz(tt.resp, 2); err == nil {
				t.Error("resposta mais curta que o pedido deve virar erro, não pânico")
			}
		})
	}
}

func TestOtimizarRotaServiceAvisoDeTempo(t *testing.T) {
	s := newTestService()

	result, err := s.OtimizarRotaService(context.Background(), OtimizarRotaRequest{
		Paradas:         paradasDeTeste(),
		MaxTempoRota:    5,
		VelocidadeMedia: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Avisos) == 0 {
		t.Error("rota acima do tempo máximo deve gerar aviso")
	}
}
