package veiculos

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"
	"strings"

	db "roteirizador/db/sqlc"
	"roteirizador/pkg/plate"
	"roteirizador/validation"
)

var (
	ErrVeiculoNaoEncontrado = errors.New("veículo não encontrado")
	ErrPlacaInvalida        = errors.New("placa inválida")
)

type InterfaceService interface {
	CreateVeiculoService(ctx context.Context, data CreateVeiculoDto) (VeiculoResponse, error)
	UpdateVeiculoService(ctx context.Context, data UpdateVeiculoDto) (VeiculoResponse, error)
	DeleteVeiculoService(ctx context.Context, id, userID int64) error
	GetVeiculosService(ctx context.Context, userID int64) ([]VeiculoResponse, error)
	GetVeiculoByIdService(ctx context.Context, id, userID int64) (VeiculoResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	ConsultarPlaca   func(ctx context.Context, placa string) (*plate.DadosVeiculo, error)
}

func NewVeiculosService(InterfaceService InterfaceRepository) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		ConsultarPlaca:   plate.ConsultarPlaca,
	}
}

// CreateVeiculoService cadastra o veículo e completa os campos vazios com os
// dados da consulta de placa. A consulta é melhor esforço; se o provedor
// falhar o cadastro segue só com o que o usuário informou.
func (p *Service) CreateVeiculoService(ctx context.Context, data CreateVeiculoDto) (VeiculoResponse, error) {
	if !validation.ValidatePlaca(data.Placa) {
		return VeiculoResponse{}, ErrPlacaInvalida
	}
	data.Placa = normalizarPlaca(data.Placa)

	p.enriquecerComConsulta(ctx, &data.CreateVeiculoRequest)

	result, err := p.InterfaceService.CreateVeiculo(ctx, data.ParseCreateToVeiculo())
	if err != nil {
		return VeiculoResponse{}, err
	}

	response := VeiculoResponse{}
	response.ParseFromVeiculoObject(result)
	return response, nil
}

func (p *Service) UpdateVeiculoService(ctx context.Context, data UpdateVeiculoDto) (VeiculoResponse, error) {
	if !validation.ValidatePlaca(data.Placa) {
		return VeiculoResponse{}, ErrPlacaInvalida
	}
	data.Placa = normalizarPlaca(data.Placa)

	if _, err := p.buscarVeiculoDoUsuario(ctx, data.ID, data.UserID); err != nil {
		return VeiculoResponse{}, err
	}

	result, err := p.InterfaceService.UpdateVeiculo(ctx, data.ParseUpdateToVeiculo())
	if err != nil {
		return VeiculoResponse{}, err
	}

	response := VeiculoResponse{}
	response.ParseFromVeiculoObject(result)
	return response, nil
}

func (p *Service) DeleteVeiculoService(ctx context.Context, id, userID int64) error {
	if _, err := p.buscarVeiculoDoUsuario(ctx, id, userID); err != nil {
		return err
	}

	return p.InterfaceService.DeleteVeiculo(ctx, db.DeleteVeiculoParams{
		ID:     id,
		UserID: userID,
	})
}

func (p *Service) GetVeiculosService(ctx context.Context, userID int64) ([]VeiculoResponse, error) {
	veiculos, err := p.InterfaceService.GetVeiculosByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]VeiculoResponse, 0, len(veiculos))
	for _, veiculo := range veiculos {
		response := VeiculoResponse{}
		response.ParseFromVeiculoObject(veiculo)
		responses = append(responses, response)
	}
	return responses, nil
}

func (p *Service) GetVeiculoByIdService(ctx context.Context, id, userID int64) (VeiculoResponse, error) {
	veiculo, err := p.buscarVeiculoDoUsuario(ctx, id, userID)
	if err != nil {
		return VeiculoResponse{}, err
	}

	response := VeiculoResponse{}
	response.ParseFromVeiculoObject(veiculo)
	return response, nil
}

func (p *Service) buscarVeiculoDoUsuario(ctx context.Context, id, userID int64) (db.Veiculo, error) {
	veiculo, err := p.InterfaceService.GetVeiculoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Veiculo{}, ErrVeiculoNaoEncontrado
	}
	if err != nil {
		return db.Veiculo{}, err
	}
	if veiculo.UserID != userID {
		return db.Veiculo{}, ErrVeiculoNaoEncontrado
	}
	return veiculo, nil
}

func (p *Service) enriquecerComConsulta(ctx context.Context, request *CreateVeiculoRequest) {
	if p.ConsultarPlaca == nil {
		return
	}

	dados, err := p.ConsultarPlaca(ctx, request.Placa)
	if err != nil {
		log.Println("erro na consulta de placa:", err)
		return
	}

	if request.Modelo == "" {
		request.Modelo = dados.Modelo
	}
	if request.Marca == "" {
		request.Marca = dados.Fabricante
	}
	if request.Ano == "" && dados.AnoModelo > 0 {
		request.Ano = strconv.Itoa(dados.AnoModelo)
	}
	if request.Cor == "" {
		request.Cor = dados.Cor
	}
	if request.Capacidade == 0 {
		request.Capacidade = int64(dados.QuantidadeLugares)
	}
}

func normalizarPlaca(placa string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(placa), "-", ""))
}
