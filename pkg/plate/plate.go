package plate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"roteirizador/pkg"
)

// DadosVeiculo resume a consulta de placa usada no cadastro de veículos.
type DadosVeiculo struct {
	Placa             string `json:"placa"`
	Fabricante        string `json:"fabricante"`
	Modelo            string `json:"modelo"`
	AnoFabricacao     int    `json:"ano_fabricacao"`
	AnoModelo         int    `json:"ano_modelo"`
	Cor               string `json:"cor"`
	Combustivel       string `json:"combustivel"`
	QuantidadeLugares int    `json:"quantidade_lugares"`
}

type apiResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    []struct {
		Placa             string `json:"placa"`
		Fabricante        string `json:"fabricante"`
		Modelo            string `json:"modelo"`
		AnoFabricacao     int    `json:"ano_fabricacao"`
		AnoModelo         int    `json:"ano_modelo"`
		Cor               string `json:"cor"`
		Combustivel       string `json:"combustivel"`
		QuantidadeLugares int    `json:"quantidade_lugares"`
	} `json:"data"`
}

const cacheTTL = 24 * time.Hour

// ConsultarPlaca busca os dados cadastrais do veículo, servindo do Redis
// quando a placa já foi consultada nas últimas 24 horas.
func ConsultarPlaca(ctx context.Context, placa string) (*DadosVeiculo, error) {
	placa = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(placa), "-", ""))
	if placa == "" {
		return nil, fmt.Errorf("placa vazia")
	}

	chave := "placa:" + placa
	if pkg.Rdb != nil {
		if cached, err := pkg.Rdb.Get(ctx, chave).Result(); err == nil {
			var dados DadosVeiculo
			if err := json.Unmarshal([]byte(cached), &dados); err == nil {
				return &dados, nil
			}
		}
	}

	apiURL := os.Getenv("API_PLACAS_URL")
	apiToken := os.Getenv("API_PLACAS_TOKEN")
	if apiURL == "" || apiToken == "" {
		return nil, fmt.Errorf("API_PLACAS_URL ou API_PLACAS_TOKEN não configurados")
	}

	client := resty.New()
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiToken).
		Get(fmt.Sprintf("%s/%s", strings.TrimRight(apiURL, "/"), placa))
	if err != nil {
		return nil, fmt.Errorf("erro na consulta de placa: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("resposta inválida da consulta de placa: %w", err)
	}
	if parsed.Error || len(parsed.Data) == 0 {
		return nil, fmt.Errorf("placa %s não encontrada: %s", placa, parsed.Message)
	}

	item := parsed.Data[0]
	dados := &DadosVeiculo{
		Placa:             item.Placa,
		Fabricante:        item.Fabricante,
		Modelo:            item.Modelo,
		AnoFabricacao:     item.AnoFabricacao,
		AnoModelo:         item.AnoModelo,
		Cor:               item.Cor,
		Combustivel:       item.Combustivel,
		QuantidadeLugares: item.QuantidadeLugares,
	}

	if pkg.Rdb != nil {
		if serialized, err := json.Marshal(dados); err == nil {
			pkg.Rdb.Set(ctx, chave, serialized, cacheTTL)
		}
	}
	return dados, nil
}
